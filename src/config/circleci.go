package config

type CircleCIConfig struct {
	Url   string
	Token string
}

func CircleCIConfigFromEnv() CircleCIConfig {
	return CircleCIConfig{
		Url:   GetenvOr("CIRCLECI_API_ENDPOINT", "https://circleci.com/api/v1.1/project/gh/ministryofjustice/"),
		Token: GetenvStr("CIRCLECI_TOKEN"),
	}
}

func (self CircleCIConfig) Enabled() bool {
	return self.Token != ""
}
