package service

import (
	"crypto/tls"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/input-output-hk/varro/src/config"
)

type AlertmanagerService interface {
	// ChannelBySeverity resolves the Slack channel that alerts
	// carrying the given severity label are routed to. A missing
	// route, receiver or slack config yields an empty channel, not
	// an error.
	ChannelBySeverity(severityLabel string) (string, error)
}

// alertmanagerConfig is the slice of the Alertmanager routing tree we
// care about: severity matchers on routes and the Slack channel of
// each receiver.
type alertmanagerConfig struct {
	Route struct {
		Routes []struct {
			Match    map[string]string `yaml:"match"`
			Receiver string            `yaml:"receiver"`
		} `yaml:"routes"`
	} `yaml:"route"`
	Receivers []struct {
		Name         string `yaml:"name"`
		SlackConfigs []struct {
			Channel string `yaml:"channel"`
		} `yaml:"slack_configs"`
	} `yaml:"receivers"`
}

type alertmanagerService struct {
	logger zerolog.Logger
	url    string
	client *http.Client
}

func NewAlertmanagerService(cfg config.AlertmanagerConfig, logger *zerolog.Logger) AlertmanagerService {
	return &alertmanagerService{
		logger: logger.With().Str("component", "AlertmanagerService").Logger(),
		url:    cfg.Url,
		client: &http.Client{
			Timeout: 5 * time.Second,
			// The in-cluster endpoint serves a self signed certificate.
			Transport: &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}},
		},
	}
}

func (self *alertmanagerService) ChannelBySeverity(severityLabel string) (string, error) {
	conf, err := self.fetch()
	if err != nil {
		return "", err
	}

	self.logger.Debug().Msgf("Looking for a route for %s", severityLabel)
	receiverName := ""
	for _, route := range conf.Route.Routes {
		if route.Match["severity"] == severityLabel {
			receiverName = route.Receiver
			self.logger.Debug().Msgf("Found route for %s - receiver: %s", severityLabel, receiverName)
			break
		}
	}
	if receiverName == "" {
		return "", nil
	}

	for _, receiver := range conf.Receivers {
		if receiver.Name != receiverName {
			continue
		}
		if len(receiver.SlackConfigs) == 0 {
			self.logger.Debug().Msgf("No slack_configs found for %s", receiverName)
			return "", nil
		}
		self.logger.Info().Msgf("Found slack channel for %s - %s", receiverName, receiver.SlackConfigs[0].Channel)
		return receiver.SlackConfigs[0].Channel, nil
	}
	return "", nil
}

// fetch pulls the status document and decodes the original config,
// which arrives as an escaped YAML string inside JSON.
func (self *alertmanagerService) fetch() (*alertmanagerConfig, error) {
	resp, err := self.client.Get(self.url)
	if err != nil {
		return nil, errors.WithMessage(err, "Error fetching Alertmanager data")
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("Error fetching Alertmanager data: %d", resp.StatusCode)
	}

	var status struct {
		Config struct {
			Original string `json:"original"`
		} `json:"config"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, errors.WithMessage(err, "Alertmanager JSON decode error")
	}

	var conf alertmanagerConfig
	if err := yaml.Unmarshal([]byte(strings.ReplaceAll(status.Config.Original, `\n`, "\n")), &conf); err != nil {
		return nil, errors.WithMessage(err, "Could not parse the Alertmanager config")
	}
	self.logger.Info().Msg("Successfully fetched Alertmanager data")
	return &conf, nil
}
