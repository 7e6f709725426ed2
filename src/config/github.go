package config

// GithubConfig carries credentials for a GitHub session. Either an app
// private key (plus app and installation ids) or a plain access token
// must be present.
type GithubConfig struct {
	Org               string
	AccessToken       string
	AppId             string
	AppInstallationId int64
	AppPrivateKey     string
}

func GithubConfigFromEnv() (cfg GithubConfig, err error) {
	cfg.Org = GetenvOr("GITHUB_ORG", "ministryofjustice")
	cfg.AccessToken = GetenvStr("GITHUB_ACCESS_TOKEN")
	cfg.AppId = GetenvStr("GITHUB_APP_ID")
	cfg.AppPrivateKey = GetenvStr("GITHUB_APP_PRIVATE_KEY")
	cfg.AppInstallationId, err = GetenvInt64("GITHUB_APP_INSTALLATION_ID")
	return
}

func (self GithubConfig) Enabled() bool {
	return self.AccessToken != "" || self.AppPrivateKey != ""
}
