// Package config loads the JSON configuration file and the environment.
//
// Every package keeps its own Config/Cfg pair; this package only reads the file
// and hands each package its section.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

// settings holds the parsed configuration file. nil until InitializeConfig runs.
var settings *viper.Viper

// GetPackageName returns the name of the running program, used in config log lines.
func GetPackageName() string {
	return strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))
}

/*
CheckIfEnvVarsPresent loads ./.env when it exists and exits with status 1 if any
of the given variables is empty. Every missing variable is logged before exiting.
*/
func CheckIfEnvVarsPresent(names ...string) {
	loadErr := godotenv.Load()
	if loadErr != nil {
		tl.Log(tl.Verbose, palette.CyanDim, "%s was not loaded: %s", ".env", loadErr)
	}

	missing := false
	for _, name := range names {
		if strings.TrimSpace(os.Getenv(name)) == "" {
			tl.Log(tl.Warning, palette.YellowBold, "%s environment variable is %s", name, "missing")
			missing = true
		}
	}
	if missing {
		os.Exit(1)
	}
}

/*
InitializeConfig reads the JSON configuration file at configPath.

A missing file is not fatal: every package then keeps its default values.
A file that exists but cannot be parsed stops the program.
*/
func InitializeConfig(configPath string) {
	_, statErr := os.Stat(configPath)
	if statErr != nil {
		tl.Log(tl.Warning, palette.PurpleBright, "Config file '%s' is %s, using defaults", configPath, "not available")
		settings = nil
		return
	}

	fileSettings := viper.New()
	fileSettings.SetConfigFile(configPath)
	fileSettings.SetConfigType("json")
	readErr := fileSettings.ReadInConfig()
	xerr.QuitIfError(readErr, fmt.Sprintf("Unable to read config file '%s'", configPath))

	settings = fileSettings
	tl.Log(tl.Info, palette.Green, "Loaded %s from '%s'", "configuration", configPath)
}

/*
Section decodes the configuration section stored under key into a new T.

It returns nil when no file was loaded or the key is absent, which the
per-package InitializeConfig functions read as "keep the defaults".
Field names come from the `json` struct tags.
*/
func Section[T any](key string) *T {
	if settings == nil || !settings.IsSet(key) {
		return nil
	}

	section := new(T)
	decodeErr := settings.UnmarshalKey(key, section, func(decoderConfig *mapstructure.DecoderConfig) {
		decoderConfig.TagName = "json"
	})
	xerr.QuitIfError(decodeErr, fmt.Sprintf("Unable to decode '%s' configuration section", key))

	return section
}

// Env returns the value of the environment variable key, or fallback when it is empty.
func Env(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
