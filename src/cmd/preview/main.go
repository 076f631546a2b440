package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"remote-report/src/pkg/bootstrap"
	"remote-report/src/pkg/config"
	"remote-report/src/pkg/database"
	echomw "remote-report/src/pkg/echo-middleware"
	"remote-report/src/pkg/preview"
	"remote-report/src/pkg/remotes"
)

// Serves today's report over HTTP so it can be checked before the batch job sends it.
func main() {
	config.CheckIfEnvVarsPresent("DATABASE_URL", echomw.EnvPreviewBearerToken)

	configPath := flag.String("config", "./cfg/config.json", "Path to your configuration file.")
	outputDir := flag.String("output-dir", "", "Where preview workbooks are written (default: a new temporary directory).")
	flag.Parse()

	bootstrap.InitializePackages(*configPath)

	if *outputDir == "" {
		tmp, err := os.MkdirTemp("", "remote-report-preview-")
		xerr.QuitIfError(err, "Unable to create preview directory")
		*outputDir = tmp
	}

	db, e := database.Open(context.Background(), config.Env("DATABASE_URL", ""))
	e.QuitIf(xerr.ErrorTypeError)
	defer db.Close()

	composer := preview.ReportComposer{Loader: remotes.NewLoader(db), OutputDir: *outputDir}
	limiter := echomw.NewRateLimiter(echomw.Cfg.MiddlewareRateLimit, echomw.Cfg.MiddlewareBurst)
	server := preview.NewServer(composer, config.Env(echomw.EnvPreviewBearerToken, ""), limiter)

	address := fmt.Sprintf("%s:%d", echomw.Cfg.Address, echomw.Cfg.Port)
	tl.Log(tl.Notice, palette.BlueBold, "Preview server listening on '%s', workbooks in '%s'", address, *outputDir)
	xerr.QuitIfError(server.Start(address), "Preview server stopped")
}
