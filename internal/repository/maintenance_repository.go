package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// MaintenanceRepository exposes destructive maintenance operations for demo
// environments.
type MaintenanceRepository interface {
	ResetAll(ctx context.Context) error
}

type maintenanceRepository struct {
	pool *pgxpool.Pool
}

// NewMaintenanceRepository returns a Postgres-backed implementation.
func NewMaintenanceRepository(pool *pgxpool.Pool) MaintenanceRepository {
	return &maintenanceRepository{pool: pool}
}

// ResetAll clears all three tables in one statement. The multi-table TRUNCATE
// with CASCADE is order-independent, and RESTART IDENTITY makes demo re-runs
// hand out ids from 1 again.
func (r *maintenanceRepository) ResetAll(ctx context.Context) error {
	const query = `TRUNCATE progress_logs, vendors, users RESTART IDENTITY CASCADE`

	_, err := r.pool.Exec(ctx, query)
	return err
}
