package database

import (
	"fmt"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	"remote-report/src/pkg/config"
)

type Config struct {
	MaxOpenConns           int `json:"max_open_conns,omitempty"`
	MaxIdleConns           int `json:"max_idle_conns,omitempty"`
	ConnMaxLifetimeSeconds int `json:"conn_max_lifetime_seconds,omitempty"`
	PingTimeoutSeconds     int `json:"ping_timeout_seconds,omitempty"`
}

func DefaultValueConfig() Config {
	return Config{
		MaxOpenConns:           4,
		MaxIdleConns:           2,
		ConnMaxLifetimeSeconds: 300,
		PingTimeoutSeconds:     15,
	}
}

var Cfg Config = DefaultValueConfig()

// InitializeConfig replaces missing values of localConfig with defaults. nil keeps the defaults.
func InitializeConfig(localConfig *Config) {
	if localConfig == nil {
		tl.Log(tl.Info, palette.Purple, "%s config is %s, keeping %s", "database", "not provided", "default database config")
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
	tl.LogJSON(tl.Verbose, palette.CyanDim, fmt.Sprintf("%s database configuration", config.GetPackageName()), Cfg)
}
