// Package postgres opens the storefront database through the pgx stdlib
// driver and applies the schema the payment ledger needs.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"storefront/internal/platform/config"
)

// Open returns a pooled *sql.DB, or nil when no DSN is configured.
func Open(ctx context.Context, cfg config.PostgresConfig) (*sql.DB, error) {
	if cfg.DSN == "" {
		return nil, nil
	}
	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}
	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS payment_attempts (
	gateway_order_id TEXT PRIMARY KEY,
	order_code       TEXT NOT NULL,
	session_id       TEXT NOT NULL,
	amount           BIGINT NOT NULL,
	currency         TEXT NOT NULL,
	method           TEXT NOT NULL,
	status           TEXT NOT NULL,
	payment_key      TEXT,
	failure_code     TEXT,
	failure_message  TEXT,
	coupon_codes     TEXT[] NOT NULL DEFAULT '{}',
	created_at       TIMESTAMPTZ NOT NULL,
	updated_at       TIMESTAMPTZ NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS payment_attempts_payment_key_idx
	ON payment_attempts (payment_key) WHERE payment_key IS NOT NULL;
CREATE INDEX IF NOT EXISTS payment_attempts_order_code_idx
	ON payment_attempts (order_code);
`

// Migrate creates the tables owned by the storefront. It is idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
