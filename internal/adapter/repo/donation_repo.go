package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bloodconnect/internal/domain"
)

// DonationRepositoryPG implements domain.DonationRepository using PostgreSQL.
// Donations are append-only; there is no update or delete.
type DonationRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(pool *pgxpool.Pool) *DonationRepositoryPG {
	return &DonationRepositoryPG{pool: pool}
}

// Create appends a donation record.
func (r *DonationRepositoryPG) Create(ctx context.Context, donation *domain.Donation) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO donations (id, donor_id, request_id, donation_date)
VALUES ($1, $2, $3, $4);
`, donation.ID, donation.DonorID, donation.RequestID, donation.DonationDate)
	if err != nil {
		return fmt.Errorf("insert donation: %w", err)
	}
	return nil
}

// List returns the whole donation log in insertion order.
func (r *DonationRepositoryPG) List(ctx context.Context) ([]domain.Donation, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, donor_id, request_id, donation_date
FROM donations
ORDER BY seq;
`)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	defer rows.Close()
	return collectDonations(rows)
}

// ListByDonor returns a donor's history in insertion order.
func (r *DonationRepositoryPG) ListByDonor(ctx context.Context, donorID string) ([]domain.Donation, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, donor_id, request_id, donation_date
FROM donations
WHERE donor_id = $1
ORDER BY seq;
`, donorID)
	if err != nil {
		return nil, fmt.Errorf("list donations by donor: %w", err)
	}
	defer rows.Close()
	return collectDonations(rows)
}

func collectDonations(rows pgx.Rows) ([]domain.Donation, error) {
	var items []domain.Donation
	for rows.Next() {
		var d domain.Donation
		if err := rows.Scan(&d.ID, &d.DonorID, &d.RequestID, &d.DonationDate); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
