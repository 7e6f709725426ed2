package config

type SlackConfig struct {
	Token         string
	NotifyChannel string
	AlertChannel  string
}

func SlackConfigFromEnv() SlackConfig {
	return SlackConfig{
		Token:         GetenvStr("SLACK_BOT_TOKEN"),
		NotifyChannel: GetenvStr("SLACK_NOTIFY_CHANNEL"),
		AlertChannel:  GetenvStr("SLACK_ALERT_CHANNEL"),
	}
}

func (self SlackConfig) Enabled() bool {
	return self.Token != ""
}
