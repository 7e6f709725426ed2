package service

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/slack-go/slack"

	"github.com/input-output-hk/varro/src/config"
)

type SlackService interface {
	// Connect checks the token against the auth endpoint.
	Connect() bool

	// Notify posts an informational message to the notify channel.
	// Delivery is best effort: a missing channel or API failure is
	// logged, never returned.
	Notify(message string)

	// Alert posts a warning message to the alert channel, best
	// effort like Notify.
	Alert(message string)

	// ChannelName resolves a channel id to its name. Unknown or
	// private channels resolve to the empty string.
	ChannelName(id string) string
}

type slackService struct {
	logger        zerolog.Logger
	client        *slack.Client
	notifyChannel string
	alertChannel  string
}

func NewSlackService(cfg config.SlackConfig, logger *zerolog.Logger) SlackService {
	return &slackService{
		logger:        logger.With().Str("component", "SlackService").Logger(),
		client:        slack.New(cfg.Token),
		notifyChannel: cfg.NotifyChannel,
		alertChannel:  cfg.AlertChannel,
	}
}

func (self *slackService) Connect() bool {
	if _, err := self.client.AuthTest(); err != nil {
		self.logger.Error().Err(err).Msg("Unable to connect to Slack")
		return false
	}
	self.logger.Info().Msg("Successfully connected to Slack")
	return true
}

func (self *slackService) Notify(message string) {
	if self.notifyChannel == "" {
		self.logger.Warn().Msg("No notification channel set in config")
		return
	}
	self.logger.Debug().Msgf("Sending notification to %s", self.notifyChannel)
	if _, _, err := self.client.PostMessage(self.notifyChannel, slack.MsgOptionText(":information-source: "+message, false)); err != nil {
		self.logger.Error().Err(err).Msg("Slack error")
	}
}

func (self *slackService) Alert(message string) {
	if self.alertChannel == "" {
		self.logger.Error().Msg("No alert channel set in config")
		return
	}
	self.logger.Debug().Msgf("Sending alert to %s", self.alertChannel)
	if _, _, err := self.client.PostMessage(self.alertChannel, slack.MsgOptionText(":warning_triangle: "+message, false)); err != nil {
		self.logger.Error().Err(err).Msg("Slack error")
	}
}

func (self *slackService) ChannelName(id string) string {
	self.logger.Debug().Msgf("Getting Slack channel name for id %s", id)
	channel, err := self.client.GetConversationInfo(&slack.GetConversationInfoInput{ChannelID: id})
	if err != nil {
		if strings.Contains(err.Error(), "channel_not_found") {
			self.logger.Info().Msgf("Unable to resolve Slack channel name - %s not found or private", id)
		} else {
			self.logger.Error().Err(err).Msg("Slack error")
		}
		return ""
	}
	return channel.Name
}
