package businessday

import (
	"fmt"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	"remote-report/src/pkg/config"
)

// Config holds the holiday lookup. The query gets the day ('YYYY-MM-DD') as $1 and returns one count.
type Config struct {
	HolidayQuery string `json:"holiday_query,omitempty"`
}

func DefaultValueConfig() Config {
	return Config{
		HolidayQuery: "SELECT COUNT(*) FROM holidays WHERE holiday_date = $1",
	}
}

var Cfg Config = DefaultValueConfig()

func InitializeConfig(localConfig *Config) {
	if localConfig == nil {
		tl.Log(tl.Info, palette.Purple, "%s config is %s, keeping %s", "businessday", "not provided", "default holiday query")
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
	tl.LogJSON(tl.Verbose, palette.CyanDim, fmt.Sprintf("%s businessday configuration", config.GetPackageName()), Cfg)
}
