package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/accounting-service/internal/domain"
)

// AccountantRepository defines persistence access for accountant users.
type AccountantRepository interface {
	Create(ctx context.Context, acc *domain.Accountant) error
	Update(ctx context.Context, acc *domain.Accountant) error
	GetByID(ctx context.Context, id int64) (*domain.Accountant, error)
	GetByUsername(ctx context.Context, username string) (*domain.Accountant, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	DeleteByUsername(ctx context.Context, username string) error
}

type accountantRepository struct {
	pool *pgxpool.Pool
}

// NewAccountantRepository returns a Postgres-backed implementation.
func NewAccountantRepository(pool *pgxpool.Pool) AccountantRepository {
	return &accountantRepository{pool: pool}
}

func (r *accountantRepository) Create(ctx context.Context, acc *domain.Accountant) error {
	const query = `
        INSERT INTO accountant_users (first_name, last_name, username, password_hash, email, phone)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		acc.FirstName,
		acc.LastName,
		acc.Username,
		acc.PasswordHash,
		acc.Email,
		acc.Phone,
	).Scan(&acc.ID, &acc.CreatedAt, &acc.UpdatedAt)
}

func (r *accountantRepository) Update(ctx context.Context, acc *domain.Accountant) error {
	const query = `
        UPDATE accountant_users
        SET first_name=$1, last_name=$2, password_hash=$3, email=$4, phone=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		acc.FirstName,
		acc.LastName,
		acc.PasswordHash,
		acc.Email,
		acc.Phone,
		acc.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *accountantRepository) GetByID(ctx context.Context, id int64) (*domain.Accountant, error) {
	const query = `
        SELECT id, first_name, last_name, username, password_hash, email, phone, created_at, updated_at
        FROM accountant_users WHERE id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *accountantRepository) GetByUsername(ctx context.Context, username string) (*domain.Accountant, error) {
	const query = `
        SELECT id, first_name, last_name, username, password_hash, email, phone, created_at, updated_at
        FROM accountant_users WHERE username=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, username))
}

func (r *accountantRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if _, err := r.GetByUsername(ctx, username); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *accountantRepository) DeleteByUsername(ctx context.Context, username string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM accountant_users WHERE username=$1`, username)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *accountantRepository) scanOne(row pgx.Row) (*domain.Accountant, error) {
	var acc domain.Accountant
	if err := row.Scan(
		&acc.ID,
		&acc.FirstName,
		&acc.LastName,
		&acc.Username,
		&acc.PasswordHash,
		&acc.Email,
		&acc.Phone,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &acc, nil
}
