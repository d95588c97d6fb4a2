package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"salon-backend/internal/pkg/config"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// DBTX is satisfied by *sql.DB and *sql.Tx so repositories run inside or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PSQL builds Postgres-flavoured statements ($1, $2, ...).
var PSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func Connect(cfg config.DBConfig) (*sql.DB, func(), error) {
	dsn := cfg.BuildDSN()

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxIdleConns(10)
	db.SetMaxOpenConns(50)
	db.SetConnMaxLifetime(time.Hour)

	cleanup := func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}

	return db, cleanup, nil
}
