package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// schemaStatements declare the three tables the service operates on.
// All statements are idempotent so EnsureSchema is safe to call repeatedly.
// Uniqueness (email, wallet_address) and the vendor -> progress cascade are
// enforced by the store itself rather than by application checks.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
        id BIGSERIAL PRIMARY KEY,
        name TEXT NOT NULL,
        email TEXT NOT NULL UNIQUE,
        password_hash TEXT NOT NULL,
        role TEXT NOT NULL,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
	`CREATE TABLE IF NOT EXISTS vendors (
        id BIGSERIAL PRIMARY KEY,
        name TEXT NOT NULL,
        wallet_address VARCHAR(42) NOT NULL UNIQUE,
        milestone_goal BIGINT NOT NULL,
        reward_amount NUMERIC(14,2) NOT NULL,
        is_paid BOOLEAN NOT NULL DEFAULT FALSE,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
	`CREATE TABLE IF NOT EXISTS progress_logs (
        id BIGSERIAL PRIMARY KEY,
        vendor_id BIGINT NOT NULL REFERENCES vendors(id) ON DELETE CASCADE,
        progress BIGINT NOT NULL,
        "timestamp" TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
}

// EnsureSchema creates the users, vendors and progress_logs tables when they
// do not exist yet. Callers treat a failure as fatal: the server must not
// start serving without its schema in place.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if pool == nil {
		return errors.New("no postgres pool available")
	}

	for i, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema (statement %d): %w", i+1, err)
		}
	}

	logger.Info("schema ensured", zap.Int("tables", len(schemaStatements)))
	return nil
}
