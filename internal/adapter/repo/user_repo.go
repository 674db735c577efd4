package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bloodconnect/internal/domain"
)

const userColumns = `id, name, blood_group, location, age, date_of_birth, gender, contact_number, email, is_active, last_donation, total_donations`

// UserRepositoryPG implements domain.UserRepository backed by PostgreSQL.
type UserRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepositoryPG.
func NewUserRepository(pool *pgxpool.Pool) *UserRepositoryPG {
	return &UserRepositoryPG{pool: pool}
}

// List returns every user in insertion order.
func (r *UserRepositoryPG) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var items []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID fetches a user, returning domain.ErrNotFound when absent.
func (r *UserRepositoryPG) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// Create inserts a new user record.
func (r *UserRepositoryPG) Create(ctx context.Context, user *domain.User) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO users (id, name, blood_group, location, age, date_of_birth, gender, contact_number, email, is_active, last_donation, total_donations)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
`,
		user.ID,
		user.Name,
		user.BloodGroup,
		user.Location,
		user.Age,
		user.DateOfBirth,
		user.Gender,
		user.ContactNumber,
		user.Email,
		user.IsActive,
		user.LastDonation,
		user.TotalDonations,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Update shallow-merges the patch over the stored record and persists the
// result. The read and write are two statements; the last writer wins.
func (r *UserRepositoryPG) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(user)

	_, err = r.pool.Exec(ctx, `
UPDATE users
SET name = $2, blood_group = $3, location = $4, age = $5, date_of_birth = $6,
    gender = $7, contact_number = $8, email = $9, is_active = $10,
    last_donation = $11, total_donations = $12
WHERE id = $1;
`,
		user.ID,
		user.Name,
		user.BloodGroup,
		user.Location,
		user.Age,
		user.DateOfBirth,
		user.Gender,
		user.ContactNumber,
		user.Email,
		user.IsActive,
		user.LastDonation,
		user.TotalDonations,
	)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.BloodGroup,
		&u.Location,
		&u.Age,
		&u.DateOfBirth,
		&u.Gender,
		&u.ContactNumber,
		&u.Email,
		&u.IsActive,
		&u.LastDonation,
		&u.TotalDonations,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
