package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bloodconnect/internal/domain"
)

const requestColumns = `id, blood_group, posted_by, contact_number, location, posted_at, urgency, status, message`

// BloodRequestRepositoryPG implements domain.BloodRequestRepository backed by PostgreSQL.
type BloodRequestRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewBloodRequestRepository creates a new BloodRequestRepositoryPG.
func NewBloodRequestRepository(pool *pgxpool.Pool) *BloodRequestRepositoryPG {
	return &BloodRequestRepositoryPG{pool: pool}
}

// List returns every blood request in insertion order.
func (r *BloodRequestRepositoryPG) List(ctx context.Context) ([]domain.BloodRequest, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+requestColumns+` FROM blood_requests ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list blood requests: %w", err)
	}
	defer rows.Close()
	return collectRequests(rows)
}

// ListOpen returns only requests still waiting for a donor, in insertion
// order. The feed never re-sorts by urgency or date.
func (r *BloodRequestRepositoryPG) ListOpen(ctx context.Context) ([]domain.BloodRequest, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+requestColumns+` FROM blood_requests WHERE status = $1 ORDER BY seq`,
		domain.RequestStatusOpen,
	)
	if err != nil {
		return nil, fmt.Errorf("list open blood requests: %w", err)
	}
	defer rows.Close()
	return collectRequests(rows)
}

// GetByID fetches a request, returning domain.ErrNotFound when absent.
func (r *BloodRequestRepositoryPG) GetByID(ctx context.Context, id string) (*domain.BloodRequest, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+requestColumns+` FROM blood_requests WHERE id = $1`, id)
	return scanRequest(row)
}

// Create inserts a new blood request.
func (r *BloodRequestRepositoryPG) Create(ctx context.Context, request *domain.BloodRequest) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO blood_requests (id, blood_group, posted_by, contact_number, location, posted_at, urgency, status, message)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
`,
		request.ID,
		request.BloodGroup,
		request.PostedBy,
		request.ContactNumber,
		request.Location,
		request.PostedAt,
		request.Urgency,
		request.Status,
		request.Message,
	)
	if err != nil {
		return fmt.Errorf("insert blood request: %w", err)
	}
	return nil
}

// Update shallow-merges the patch over the stored record and persists it.
func (r *BloodRequestRepositoryPG) Update(ctx context.Context, id string, patch domain.BloodRequestPatch) (*domain.BloodRequest, error) {
	request, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(request)

	_, err = r.pool.Exec(ctx, `
UPDATE blood_requests
SET blood_group = $2, posted_by = $3, contact_number = $4, location = $5,
    urgency = $6, status = $7, message = $8
WHERE id = $1;
`,
		request.ID,
		request.BloodGroup,
		request.PostedBy,
		request.ContactNumber,
		request.Location,
		request.Urgency,
		request.Status,
		request.Message,
	)
	if err != nil {
		return nil, fmt.Errorf("update blood request: %w", err)
	}
	return request, nil
}

func collectRequests(rows pgx.Rows) ([]domain.BloodRequest, error) {
	var items []domain.BloodRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanRequest(row pgx.Row) (*domain.BloodRequest, error) {
	var req domain.BloodRequest
	err := row.Scan(
		&req.ID,
		&req.BloodGroup,
		&req.PostedBy,
		&req.ContactNumber,
		&req.Location,
		&req.PostedAt,
		&req.Urgency,
		&req.Status,
		&req.Message,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}
