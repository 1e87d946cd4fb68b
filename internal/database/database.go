package database

import (
	"context"
	"crypto/tls"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgxpool.Pool the services depend on. Accepting
// the interface instead of the pool keeps every handler testable with a
// substituted store.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// New creates the process-wide connection pool and verifies connectivity.
// The pool tolerates concurrent overlapping queries and is never closed in
// normal operation.
func New(ctx context.Context, databaseURL string, tlsSkipVerify bool) (*pgxpool.Pool, error) {
	poolCfg, err := BuildPoolConfig(databaseURL, tlsSkipVerify)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// BuildPoolConfig parses the connection string and applies the TLS
// relaxation. Verification is only relaxed when the connection negotiates
// TLS at all; plain connections are left untouched.
func BuildPoolConfig(databaseURL string, tlsSkipVerify bool) (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	if tlsSkipVerify && cfg.ConnConfig.TLSConfig != nil {
		cfg.ConnConfig.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return cfg, nil
}

// Migrate runs the SQL statements to set up the database schema. The DDL is
// idempotent; rows written by earlier deployments are preserved.
func Migrate(ctx context.Context, db Querier) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS app_users (
		id SERIAL PRIMARY KEY,
		email TEXT NOT NULL,
		password TEXT NOT NULL,
		ip TEXT NOT NULL DEFAULT 'unknown',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS products (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		price NUMERIC NOT NULL,
		image TEXT
	);
	`
	_, err := db.Exec(ctx, sqlStmt)
	return err
}
