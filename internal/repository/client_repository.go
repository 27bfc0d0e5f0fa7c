package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/accounting-service/internal/domain"
)

// ClientRepository defines persistence access for client cases.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	Update(ctx context.Context, client *domain.Client) error
	GetByClientID(ctx context.Context, clientID string) (*domain.Client, error)
	GetByLoginUsername(ctx context.Context, username string) (*domain.Client, error)
	ListByAccountant(ctx context.Context, accountantName string) ([]domain.Client, error)
	CountByAccountant(ctx context.Context, accountantName string) (int, error)
	DeleteByClientID(ctx context.Context, clientID string) error
	ExistsByClientID(ctx context.Context, clientID string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByBankAccountNumber(ctx context.Context, accountNumber string) (bool, error)
	SetLoginCredentials(ctx context.Context, clientID, username, passwordHash string) error
}

const clientColumns = `
        id, business_name, accountant_name, client_id, email, phone, contact_phone,
        address, zip, business_type, bank_name, bank_branch, bank_account_number,
        account_owner_name, login_username, login_password_hash, created_at, updated_at`

type clientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository returns a Postgres-backed implementation.
func NewClientRepository(pool *pgxpool.Pool) ClientRepository {
	return &clientRepository{pool: pool}
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	const query = `
        INSERT INTO client_details (
            business_name, accountant_name, client_id, email, phone, contact_phone,
            address, zip, business_type, bank_name, bank_branch, bank_account_number,
            account_owner_name)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		client.BusinessName,
		client.AccountantName,
		client.ClientID,
		client.Email,
		client.Phone,
		client.ContactPhone,
		client.Address,
		client.Zip,
		client.BusinessType,
		client.BankName,
		client.BankBranch,
		client.BankAccountNumber,
		client.AccountOwnerName,
	).Scan(&client.ID, &client.CreatedAt, &client.UpdatedAt)
}

func (r *clientRepository) Update(ctx context.Context, client *domain.Client) error {
	const query = `
        UPDATE client_details
        SET business_name=$1, email=$2, phone=$3, address=$4, zip=$5, business_type=$6,
            bank_name=$7, bank_branch=$8, bank_account_number=$9, updated_at=NOW()
        WHERE client_id=$10`

	cmd, err := r.pool.Exec(ctx, query,
		client.BusinessName,
		client.Email,
		client.Phone,
		client.Address,
		client.Zip,
		client.BusinessType,
		client.BankName,
		client.BankBranch,
		client.BankAccountNumber,
		client.ClientID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *clientRepository) GetByClientID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM client_details WHERE client_id=$1`
	return scanClient(r.pool.QueryRow(ctx, query, clientID))
}

func (r *clientRepository) GetByLoginUsername(ctx context.Context, username string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM client_details WHERE login_username=$1`
	return scanClient(r.pool.QueryRow(ctx, query, username))
}

func (r *clientRepository) ListByAccountant(ctx context.Context, accountantName string) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM client_details WHERE accountant_name=$1 ORDER BY business_name`

	rows, err := r.pool.Query(ctx, query, accountantName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *client)
	}
	return clients, rows.Err()
}

func (r *clientRepository) CountByAccountant(ctx context.Context, accountantName string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM client_details WHERE accountant_name=$1`, accountantName,
	).Scan(&count)
	return count, err
}

func (r *clientRepository) DeleteByClientID(ctx context.Context, clientID string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM client_details WHERE client_id=$1`, clientID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *clientRepository) ExistsByClientID(ctx context.Context, clientID string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM client_details WHERE client_id=$1)`, clientID)
}

func (r *clientRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM client_details WHERE email=$1)`, email)
}

func (r *clientRepository) ExistsByBankAccountNumber(ctx context.Context, accountNumber string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM client_details WHERE bank_account_number=$1)`, accountNumber)
}

func (r *clientRepository) SetLoginCredentials(ctx context.Context, clientID, username, passwordHash string) error {
	const query = `
        UPDATE client_details
        SET login_username=$1, login_password_hash=$2, updated_at=NOW()
        WHERE client_id=$3`

	cmd, err := r.pool.Exec(ctx, query, username, passwordHash, clientID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *clientRepository) exists(ctx context.Context, query, arg string) (bool, error) {
	var found bool
	if err := r.pool.QueryRow(ctx, query, arg).Scan(&found); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return found, nil
}

func scanClient(row pgx.Row) (*domain.Client, error) {
	var client domain.Client
	if err := row.Scan(
		&client.ID,
		&client.BusinessName,
		&client.AccountantName,
		&client.ClientID,
		&client.Email,
		&client.Phone,
		&client.ContactPhone,
		&client.Address,
		&client.Zip,
		&client.BusinessType,
		&client.BankName,
		&client.BankBranch,
		&client.BankAccountNumber,
		&client.AccountOwnerName,
		&client.LoginUsername,
		&client.LoginPasswordHash,
		&client.CreatedAt,
		&client.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &client, nil
}
