package echomw

import (
	"fmt"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	"remote-report/src/pkg/config"
)

// Config is the "preview" section: where the server listens and how hard it can be hit.
type Config struct {
	Address             string `json:"address,omitempty"`
	Port                int    `json:"port,omitempty"`
	MiddlewareRateLimit int    `json:"middleware_rate_limit,omitempty"`
	MiddlewareBurst     int    `json:"middleware_burst,omitempty"`
}

func DefaultValueConfig() Config {
	return Config{
		Address:             "127.0.0.1",
		Port:                8402,
		MiddlewareRateLimit: 1,
		MiddlewareBurst:     5,
	}
}

var Cfg Config = DefaultValueConfig()

func InitializeConfig(localConfig *Config) {
	if localConfig == nil {
		tl.Log(tl.Info, palette.Purple, "%s config is %s, keeping %s", "preview", "not provided", "default listener")
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

	tl.Log(tl.Info, palette.Green, "%s config was %s, listening on %s:%v", "preview", "provided", Cfg.Address, Cfg.Port)
	tl.LogJSON(tl.Verbose, palette.CyanDim, fmt.Sprintf("%s preview configuration", config.GetPackageName()), Cfg)
}
