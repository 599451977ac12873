package common

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/bakurvik/mylib/libadmin/internal/config"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx"
	_ "github.com/lib/pq"              // registers "postgres"
	_ "modernc.org/sqlite"             // registers "sqlite"
)

const (
	maxConnLifetime = time.Hour
	maxConnIdleTime = 5 * time.Minute
	pingTimeout     = 5 * time.Second
)

// SetupDB opens the connection pool described by cfg and checks that the
// database answers.
func SetupDB(ctx context.Context, cfg config.DBConfig) (*sqlx.DB, error) {
	dsn := cfg.DSN()
	if cfg.Driver == config.DriverSQLite {
		dsn = sqliteDSN(dsn)
	}

	db, err := sqlx.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetMaxIdleConns(cfg.MaxConns)
	db.SetConnMaxLifetime(maxConnLifetime)
	db.SetConnMaxIdleTime(maxConnIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		CloseDB(db)
		return nil, errors.Wrap(err, "ping database")
	}
	return db, nil
}

// sqliteDSN turns on foreign keys and a busy timeout unless the DSN already
// sets pragmas of its own.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_pragma=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func CloseDB(db io.Closer) {
	if err := db.Close(); err != nil {
		slog.Error("Failed to close db", "error", err)
	}
}
