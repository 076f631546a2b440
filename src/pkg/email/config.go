package email

import (
	"fmt"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	"remote-report/src/pkg/config"
)

/*
Config holds provider settings that are not secrets.

Credentials come from the environment: SENDGRID_API_KEY, MAILGUN_DOMAIN, MAILGUN_API_KEY,
the AWS default chain, SMTP_USERNAME and SMTP_PASSWORD.
*/
type Config struct {
	SendGridHost   string `json:"sendgrid_host,omitempty"`
	MailgunAPIBase string `json:"mailgun_api_base,omitempty"`
	SESRegion      string `json:"ses_region,omitempty"`
	SMTPHost       string `json:"smtp_host,omitempty"`
	SMTPPort       int    `json:"smtp_port,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
}

func DefaultValueConfig() Config {
	return Config{
		SendGridHost:   "https://api.sendgrid.com",
		MailgunAPIBase: "https://api.mailgun.net/v3",
		SESRegion:      "us-east-1",
		SMTPHost:       "localhost",
		SMTPPort:       587,
		TimeoutSeconds: 60,
	}
}

var Cfg Config = DefaultValueConfig()

func InitializeConfig(localConfig *Config) {
	if localConfig == nil {
		tl.Log(tl.Info, palette.Purple, "%s config is %s, keeping %s", "email", "not provided", "default provider settings")
		return
	}

	Cfg = *localConfig
	tl.ApplyDefaults(&Cfg, DefaultValueConfig(), func(field string, defVal any) {
		tl.Log(
			tl.Info, palette.Purple,
			"%s field is %s in %s configuration. Using default value: %v",
			field, "missing", config.GetPackageName(), tl.PrettyForStderr(defVal),
		)
	})
	tl.LogJSON(tl.Verbose, palette.CyanDim, fmt.Sprintf("%s email configuration", config.GetPackageName()), Cfg)
}
