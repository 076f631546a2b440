package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

// Querier is the read side of a database handle. *sql.DB satisfies it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

/*
Open connects to PostgreSQL through the pgx driver and returns a database/sql handle.

The handle is pinged before it is returned. The caller owns it and must Close it.
*/
func Open(ctx context.Context, dsn string) (db *sql.DB, e *xerr.Error) {
	connConfig, parseErr := pgx.ParseConfig(dsn)
	if parseErr != nil {
		e = xerr.NewError(parseErr, "parse database DSN", "DATABASE_URL")
		return nil, e
	}

	db = stdlib.OpenDB(*connConfig)
	db.SetMaxOpenConns(Cfg.MaxOpenConns)
	db.SetMaxIdleConns(Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(Cfg.ConnMaxLifetimeSeconds) * time.Second)

	pingCtx, cancel := context.WithTimeout(ctx, time.Duration(Cfg.PingTimeoutSeconds)*time.Second)
	defer cancel()

	pingErr := db.PingContext(pingCtx)
	if pingErr != nil {
		_ = db.Close()
		e = xerr.NewError(pingErr, "ping database", map[string]any{"host": connConfig.Host, "database": connConfig.Database})
		return nil, e
	}

	tl.Log(tl.Info1, palette.Green, "Connected to database '%s' on '%s'", connConfig.Database, connConfig.Host)
	return db, nil
}
