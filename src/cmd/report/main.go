package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"remote-report/src/pkg/bootstrap"
	"remote-report/src/pkg/businessday"
	"remote-report/src/pkg/config"
	"remote-report/src/pkg/database"
	"remote-report/src/pkg/email"
	"remote-report/src/pkg/remotes"
	"remote-report/src/pkg/report"
	"remote-report/src/pkg/runlog"
)

/*
main runs the daily remote-work report once.

Example:

	go run ./src/cmd/report -config ./cfg/config.json -dry-run
*/
func main() {
	configPath := flag.String("config", "./cfg/config.json", "Path to your configuration file.")
	workdir := flag.String("workdir", "", "Directory to run in. Config, output and journal paths are relative to it.")
	journalPath := flag.String("journal", "./logs/remote-report.log", "Journal file with one JSON line per run event.")
	force := flag.Bool("force", false, "Run even when today is a weekend or a holiday.")
	dryRun := flag.Bool("dry-run", false, "Build the report and the workbook but only log the email.")
	flag.Parse()

	if *workdir != "" {
		xerr.QuitIfError(os.Chdir(*workdir), fmt.Sprintf("Unable to change directory to '%s'", *workdir))
	}
	config.CheckIfEnvVarsPresent("DATABASE_URL")

	bootstrap.InitializePackages(*configPath)
	if *dryRun {
		report.Cfg.DryRun = true
	}

	journal, e := runlog.Open(*journalPath, config.GetPackageName())
	e.QuitIf(xerr.ErrorTypeError)
	defer journal.Close()

	banner("INICIANDO PROCESO")
	journal.Start()

	e = run(context.Background(), journal, *force)
	if e != nil {
		tl.Log(tl.Error, palette.Red, "Ocurrio un error en el proceso, %s", "see the error below")
		journal.Fail("report run failed", e)
		journal.Close()
		e.QuitIf(xerr.ErrorTypeError)
	}

	journal.Finish()
	banner("FINALIZANDO PROCESO")
}

func run(ctx context.Context, journal *runlog.Journal, force bool) (e *xerr.Error) {
	db, e := database.Open(ctx, config.Env("DATABASE_URL", ""))
	if e != nil {
		return e
	}
	defer db.Close()

	var gate businessday.Gate = businessday.NewSQLGate(db)
	if force {
		tl.Log(tl.Warning, palette.Yellow, "%s flag is set, %s", "-force", "skipping the business day check")
		gate = businessday.Fixed(true)
	}

	mailer, e := email.NewClient(email.Provider(report.Cfg.Provider))
	if e != nil {
		return e
	}

	pipeline := &report.Pipeline{
		Loader:  remotes.NewLoader(db),
		Gate:    gate,
		Mailer:  mailer,
		Journal: journal,
	}
	_, e = pipeline.Run(ctx)
	return e
}

func banner(title string) {
	line := strings.Repeat("-", 10)
	tl.Log(tl.Notice, palette.BlueBold, "%s", line)
	tl.Log(tl.Notice, palette.BlueBold, "%s", title)
	tl.Log(tl.Notice, palette.BlueBold, "%s", line)
}
