// Package storage opens the SQLite database file backing the watchlist
// and keeps its schema up to date.
package storage

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

//go:embed migrations/*.sql
var migrations embed.FS

// pragmas applied to every connection. synchronous(FULL) makes a commit
// durable before it returns.
var pragmas = []string{
	"busy_timeout(5000)",
	"journal_mode(WAL)",
	"synchronous(FULL)",
	"foreign_keys(1)",
}

// DSN builds the modernc.org/sqlite data source name for a database file.
func DSN(path string) string {
	params := make([]string, 0, len(pragmas))
	for _, p := range pragmas {
		params = append(params, "_pragma="+p)
	}
	return path + "?" + strings.Join(params, "&")
}

// Open connects to the SQLite file at path.
// The pool is limited to a single connection so that writers queue up
// instead of failing with SQLITE_BUSY.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, DriverName, DSN(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	return db, nil
}

// Migrate applies the embedded schema migrations. With reset set, every
// migration is rolled back first, dropping and recreating the tables.
func Migrate(ctx context.Context, db *sqlx.DB, reset bool, log *zap.SugaredLogger) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{log})
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if reset {
		if err := goose.ResetContext(ctx, db.DB, "migrations"); err != nil {
			return fmt.Errorf("reset database: %w", err)
		}
		log.Infow("database reset")
	}

	if err := goose.UpContext(ctx, db.DB, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db.DB)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	log.Infow("database migrated", "version", version)
	return nil
}

// gooseLogger routes goose output through zap.
type gooseLogger struct {
	log *zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Infof(strings.TrimSpace(format), v...)
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Fatalf(strings.TrimSpace(format), v...)
}
