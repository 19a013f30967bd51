package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/subsidy-service/internal/domain"
)

// VendorRepository defines persistence access for vendors.
type VendorRepository interface {
	Create(ctx context.Context, vendor *domain.Vendor) error
	List(ctx context.Context) ([]domain.Vendor, error)
	MarkPaid(ctx context.Context, vendorID int64) error
}

type vendorRepository struct {
	pool *pgxpool.Pool
}

// NewVendorRepository returns a Postgres-backed implementation.
func NewVendorRepository(pool *pgxpool.Pool) VendorRepository {
	return &vendorRepository{pool: pool}
}

func (r *vendorRepository) Create(ctx context.Context, vendor *domain.Vendor) error {
	const query = `
        INSERT INTO vendors (name, wallet_address, milestone_goal, reward_amount)
        VALUES ($1, $2, $3, $4)
        RETURNING id, is_paid, created_at`

	return r.pool.QueryRow(ctx, query,
		vendor.Name,
		vendor.WalletAddress,
		vendor.MilestoneGoal,
		vendor.RewardAmount,
	).Scan(&vendor.ID, &vendor.IsPaid, &vendor.CreatedAt)
}

func (r *vendorRepository) List(ctx context.Context) ([]domain.Vendor, error) {
	const query = `
        SELECT id, name, wallet_address, milestone_goal, reward_amount, is_paid, created_at
        FROM vendors ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vendors := []domain.Vendor{}
	for rows.Next() {
		var v domain.Vendor
		if err := rows.Scan(
			&v.ID,
			&v.Name,
			&v.WalletAddress,
			&v.MilestoneGoal,
			&v.RewardAmount,
			&v.IsPaid,
			&v.CreatedAt,
		); err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}

// MarkPaid flips is_paid unconditionally. The affected-row count is not
// surfaced: repeating the call, or calling it for an unknown id, is a no-op.
func (r *vendorRepository) MarkPaid(ctx context.Context, vendorID int64) error {
	const query = `UPDATE vendors SET is_paid = TRUE WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, vendorID)
	return err
}
