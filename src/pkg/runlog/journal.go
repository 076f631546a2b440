package runlog

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/tuumbleweed/xerr"
)

/*
Journal is the persistent record of report runs: one timestamped JSON line per event.

All methods accept a nil receiver and do nothing, so callers never need to check.
*/
type Journal struct {
	logger  zerolog.Logger
	closer  io.Closer
	started time.Time
}

// Open appends to the journal file at path, creating it and its directory when missing.
func Open(path string, process string) (journal *Journal, e *xerr.Error) {
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		e = xerr.NewError(err, "Unable to create journal directory", path)
		return nil, e
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		e = xerr.NewError(err, "Unable to open journal file", path)
		return nil, e
	}

	journal = NewJournal(file, process)
	journal.closer = file
	return journal, nil
}

// NewJournal writes to w. Close does not close w.
func NewJournal(w io.Writer, process string) *Journal {
	logger := zerolog.New(w).With().Timestamp().Str("process", process).Logger()
	return &Journal{logger: logger}
}

func (j *Journal) Start() {
	if j == nil {
		return
	}
	j.started = time.Now()
	j.logger.Info().Str("event", "start").Msg("INICIANDO PROCESO")
}

func (j *Journal) Info(message string, fields map[string]any) {
	if j == nil {
		return
	}
	j.logger.Info().Str("event", "info").Fields(fields).Msg(message)
}

// Fail records a failed run. cause is logged as "error" when it is an error, as "cause" otherwise.
func (j *Journal) Fail(message string, cause any) {
	if j == nil {
		return
	}

	event := j.logger.Error().Str("event", "failure")
	if err, ok := cause.(error); ok {
		event = event.Err(err)
	} else if cause != nil {
		event = event.Interface("cause", cause)
	}
	event.Msg(message)
}

func (j *Journal) Finish() {
	if j == nil {
		return
	}
	event := j.logger.Info().Str("event", "finish")
	if !j.started.IsZero() {
		event = event.Dur("elapsed", time.Since(j.started))
	}
	event.Msg("FINALIZANDO PROCESO")
}

func (j *Journal) Close() {
	if j == nil || j.closer == nil {
		return
	}
	_ = j.closer.Close()
	j.closer = nil
}
