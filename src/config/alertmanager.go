package config

type AlertmanagerConfig struct {
	Url           string
	SeverityLabel string
}

func AlertmanagerConfigFromEnv() AlertmanagerConfig {
	return AlertmanagerConfig{
		Url:           GetenvOr("ALERTMANAGER_ENDPOINT", "http://monitoring-alerts-service.cloud-platform-monitoring-alerts:8080/alertmanager/status"),
		SeverityLabel: GetenvStr("ALERT_SEVERITY_LABEL"),
	}
}
