// Package bootstrap hands every package its section of the JSON configuration.
package bootstrap

import (
	"remote-report/src/pkg/businessday"
	"remote-report/src/pkg/config"
	"remote-report/src/pkg/database"
	echomw "remote-report/src/pkg/echo-middleware"
	"remote-report/src/pkg/email"
	"remote-report/src/pkg/remotes"
	"remote-report/src/pkg/report"
)

/*
InitializePackages reads the config file at path and initializes each package from its section.

Missing sections keep the package defaults.
*/
func InitializePackages(path string) {
	config.InitializeConfig(path)

	database.InitializeConfig(config.Section[database.Config]("database"))
	remotes.InitializeConfig(config.Section[remotes.Config]("remotes"))
	businessday.InitializeConfig(config.Section[businessday.Config]("businessday"))
	email.InitializeConfig(config.Section[email.Config]("email"))
	report.InitializeConfig(config.Section[report.Config]("report"))
	echomw.InitializeConfig(config.Section[echomw.Config]("preview"))
}
