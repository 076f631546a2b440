package businessday

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

// Gate decides whether a report runs on a given day.
type Gate interface {
	IsBusinessDay(ctx context.Context, day time.Time) (bool, *xerr.Error)
}

// RowQuerier is the single-row read of a database handle. *sql.DB satisfies it.
type RowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

/*
SQLGate treats Saturday and Sunday as non-business days and asks the
database whether any other day is a holiday.
*/
type SQLGate struct {
	db RowQuerier
}

func NewSQLGate(db RowQuerier) *SQLGate {
	return &SQLGate{db: db}
}

func (g *SQLGate) IsBusinessDay(ctx context.Context, day time.Time) (ok bool, e *xerr.Error) {
	if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
		tl.Log(tl.Info, palette.Yellow, "%s is a %s", day.Format(time.DateOnly), day.Weekday())
		return false, nil
	}

	var holidays int
	err := g.db.QueryRowContext(ctx, Cfg.HolidayQuery, day.Format(time.DateOnly)).Scan(&holidays)
	if err != nil {
		e = xerr.NewError(fmt.Errorf("holiday lookup: %w", err), "Unable to check the holiday calendar", day.Format(time.DateOnly))
		return false, e
	}

	if holidays > 0 {
		tl.Log(tl.Info, palette.Yellow, "%s is a %s", day.Format(time.DateOnly), "holiday")
		return false, nil
	}
	return true, nil
}

// Fixed always answers with its own value.
type Fixed bool

func (f Fixed) IsBusinessDay(ctx context.Context, day time.Time) (bool, *xerr.Error) {
	return bool(f), nil
}
