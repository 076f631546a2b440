package report

import (
	"fmt"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	"remote-report/src/pkg/config"
)

// Config is the "report" section of the JSON configuration.
type Config struct {
	Sender        string   `json:"sender,omitempty"`
	Recipients    []string `json:"recipients,omitempty"`
	CC            []string `json:"cc,omitempty"`
	Contacts      []string `json:"contacts,omitempty"`
	SubjectFormat string   `json:"subject_format,omitempty"`
	DateLayout    string   `json:"date_layout,omitempty"`
	OutputDir     string   `json:"output_dir,omitempty"`
	FilePrefix    string   `json:"file_prefix,omitempty"`
	ArchiveDir    string   `json:"archive_dir,omitempty"`    // empty disables the archive
	Threshold     float64  `json:"threshold,omitempty"`      // percent, inclusive
	ReferenceLine float64  `json:"reference_line,omitempty"` // percent
	DPI           int      `json:"dpi,omitempty"`
	Provider      string   `json:"provider,omitempty"`
	DryRun        bool     `json:"dry_run,omitempty"`
}

func DefaultValueConfig() Config {
	return Config{
		SubjectFormat: "Reporte de Usuarios Remotos - %s",
		DateLayout:    "2006-01-02",
		OutputDir:     "files",
		FilePrefix:    "usuarios-remotos",
		Threshold:     8,
		ReferenceLine: 8,
		DPI:           100,
		Provider:      "smtp",
	}
}

var Cfg Config = DefaultValueConfig()

/*
If local Config is provided - use it. Replace all missing values with default ones.

If not provided - just use the defaults.
*/
func InitializeConfig(localConfig *Config) {
	if localConfig == nil {
		tl.Log(tl.Warning, palette.Yellow, "%s config is %s, no recipients are set", "report", "not provided")
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

	tl.LogJSON(tl.Verbose, palette.CyanDim, fmt.Sprintf("%s report configuration", config.GetPackageName()), Cfg)
}
