package report

import (
	"context"
	"fmt"
	"time"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"remote-report/src/pkg/businessday"
	"remote-report/src/pkg/email"
	"remote-report/src/pkg/remotes"
	"remote-report/src/pkg/render"
	"remote-report/src/pkg/runlog"
	"remote-report/src/pkg/workbook"
)

// Loader supplies the day's dataset. *remotes.Loader satisfies it.
type Loader interface {
	Load(ctx context.Context) (remotes.Dataset, *xerr.Error)
}

// Mailer delivers the finished report. A (false, nil) answer counts as a failure.
type Mailer interface {
	Send(ctx context.Context, message email.Message) (bool, *xerr.Error)
}

// Payload is everything one run produced.
type Payload struct {
	Date         time.Time         `json:"date"`
	Subject      string            `json:"subject"`
	HTML         string            `json:"-"`
	Text         string            `json:"-"`
	WorkbookPath string            `json:"workbook_path"`
	Artifacts    []render.Artifact `json:"artifacts"`
	Message      email.Message     `json:"message"`
}

// Pipeline runs one report: gate, load, render, export, send.
type Pipeline struct {
	Loader  Loader
	Gate    businessday.Gate
	Mailer  Mailer
	Journal *runlog.Journal
	Now     func() time.Time
}

/*
Run produces and sends today's report.

On a non-business day it returns (nil, nil) without touching the database,
the filesystem or the mailer. The workbook stays on disk when sending fails.
*/
func (p *Pipeline) Run(ctx context.Context) (payload *Payload, e *xerr.Error) {
	now := time.Now()
	if p.Now != nil {
		now = p.Now()
	}

	businessDay, e := p.Gate.IsBusinessDay(ctx, now)
	if e != nil {
		return nil, e
	}
	if !businessDay {
		tl.Log(tl.Warning, palette.Yellow, "%s is not a business day, %s", now.Format(time.DateOnly), "skipping report")
		p.Journal.Info("not a business day", map[string]any{"date": now.Format(time.DateOnly)})
		return nil, nil
	}

	dataset, e := p.Loader.Load(ctx)
	if e != nil {
		return nil, e
	}
	p.Journal.Info("data retrieved", map[string]any{"remote_today": len(dataset.Today), "departments": len(dataset.Departments)})

	payload, e = Prepare(dataset, now, Cfg, remotes.Cfg.Labels)
	if e != nil {
		return nil, e
	}

	if Cfg.ArchiveDir != "" {
		_, archiveErr := Archive(payload, Cfg.ArchiveDir)
		if archiveErr != nil {
			tl.Log(tl.Warning, palette.Yellow, "Report archive %s, sending anyway", "failed")
		}
	}

	sent, mailErr := p.Mailer.Send(ctx, payload.Message)
	if mailErr != nil {
		e = xerr.NewError(ErrDispatch, "Unable to send the report", mailErr)
		return payload, e
	}
	if !sent {
		e = xerr.NewError(fmt.Errorf("%w: mailer reported the message as not sent", ErrDispatch), "Unable to send the report", payload.Subject)
		return payload, e
	}

	tl.Log(tl.Info1, palette.Green, "Report %s to %s", "sent", payload.Message.Recipients)
	p.Journal.Info("report sent", map[string]any{"subject": payload.Subject, "workbook": payload.WorkbookPath})
	return payload, nil
}

/*
Prepare renders the images, assembles the body and writes the workbook for day.
It does not send anything.
*/
func Prepare(dataset remotes.Dataset, day time.Time, cfg Config, labels remotes.Labels) (payload *Payload, e *xerr.Error) {
	artifacts, renderErr := Compose(dataset, cfg, labels)
	if renderErr != nil {
		e = xerr.NewError(ErrReportGeneration, "Unable to render report images", renderErr)
		return nil, e
	}

	path := WorkbookPath(cfg, day)
	exportErr := workbook.Export(path, Sheets(dataset, labels, cfg.DateLayout))
	if exportErr != nil {
		e = xerr.NewError(ErrReportGeneration, "Unable to export report workbook", exportErr)
		return nil, e
	}

	subject := fmt.Sprintf(cfg.SubjectFormat, day.Format(cfg.DateLayout))
	payload = &Payload{
		Date:         day,
		Subject:      subject,
		HTML:         BuildBody(artifacts, cfg),
		Text:         BuildText(dataset, cfg),
		WorkbookPath: path,
		Artifacts:    artifacts,
	}
	payload.Message = email.Message{
		Sender:      cfg.Sender,
		Recipients:  cfg.Recipients,
		CC:          cfg.CC,
		Subject:     subject,
		Text:        payload.Text,
		HTML:        payload.HTML,
		Attachments: []string{path},
		DryRun:      cfg.DryRun,
	}

	tl.Log(tl.Info1, palette.Green, "Report for %s %s with %v images", day.Format(time.DateOnly), "prepared", len(artifacts))
	return payload, nil
}
