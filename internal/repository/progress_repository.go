package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/subsidy-service/internal/domain"
)

// ProgressRepository defines persistence access for the append-only
// progress ledger. Entries are never updated or deleted individually.
type ProgressRepository interface {
	Append(ctx context.Context, entry *domain.ProgressEntry) error
	TotalByVendor(ctx context.Context, vendorID int64) (int64, error)
}

type progressRepository struct {
	pool *pgxpool.Pool
}

// NewProgressRepository returns a Postgres-backed implementation.
func NewProgressRepository(pool *pgxpool.Pool) ProgressRepository {
	return &progressRepository{pool: pool}
}

func (r *progressRepository) Append(ctx context.Context, entry *domain.ProgressEntry) error {
	const query = `
        INSERT INTO progress_logs (vendor_id, progress)
        VALUES ($1, $2)
        RETURNING id, "timestamp"`

	return r.pool.QueryRow(ctx, query,
		entry.VendorID,
		entry.Progress,
	).Scan(&entry.ID, &entry.Timestamp)
}

// TotalByVendor sums all increments for a vendor; vendors with no entries
// report 0, never NULL.
func (r *progressRepository) TotalByVendor(ctx context.Context, vendorID int64) (int64, error) {
	const query = `
        SELECT COALESCE(SUM(progress), 0)
        FROM progress_logs WHERE vendor_id = $1`

	var total int64
	if err := r.pool.QueryRow(ctx, query, vendorID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
