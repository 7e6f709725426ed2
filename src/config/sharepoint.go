package config

// SharepointConfig holds the Azure AD app registration used for
// app-only Microsoft Graph access to a SharePoint site.
type SharepointConfig struct {
	SiteURL      string
	SiteName     string
	ClientId     string
	ClientSecret string
	TenantId     string
}

func SharepointConfigFromEnv() SharepointConfig {
	return SharepointConfig{
		SiteURL:      GetenvOr("SITE_URL", "https://justiceuk.sharepoint.com"),
		SiteName:     GetenvStr("SITE_NAME"),
		ClientId:     GetenvStr("SP_CLIENT_ID"),
		ClientSecret: GetenvStr("SP_CLIENT_SECRET"),
		TenantId:     GetenvStr("AZ_TENANT_ID"),
	}
}

func (self SharepointConfig) Enabled() bool {
	return self.ClientId != "" && self.ClientSecret != "" && self.TenantId != ""
}
