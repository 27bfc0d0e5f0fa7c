package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/accounting-service/internal/domain"
)

// DocumentRepository defines persistence access for client documents.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id int64) (*domain.Document, error)
	ListByClientID(ctx context.Context, clientID string) ([]domain.Document, error)
	UpdateStatus(ctx context.Context, id int64, status domain.DocumentStatus) error
	Delete(ctx context.Context, id int64) error
}

type documentRepository struct {
	pool *pgxpool.Pool
}

// NewDocumentRepository returns a Postgres-backed implementation.
func NewDocumentRepository(pool *pgxpool.Pool) DocumentRepository {
	return &documentRepository{pool: pool}
}

func (r *documentRepository) Create(ctx context.Context, doc *domain.Document) error {
	const query = `
        INSERT INTO documents (document_name, file_data, client_id, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, uploaded_at`

	return r.pool.QueryRow(ctx, query,
		doc.Name,
		doc.FileData,
		doc.ClientID,
		doc.Status,
	).Scan(&doc.ID, &doc.UploadedAt)
}

func (r *documentRepository) GetByID(ctx context.Context, id int64) (*domain.Document, error) {
	const query = `
        SELECT id, document_name, file_data, client_id, status, uploaded_at
        FROM documents WHERE id=$1`

	var doc domain.Document
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.Name,
		&doc.FileData,
		&doc.ClientID,
		&doc.Status,
		&doc.UploadedAt,
	); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) ListByClientID(ctx context.Context, clientID string) ([]domain.Document, error) {
	// File payloads are excluded from listings; they are fetched one at a
	// time through GetByID.
	const query = `
        SELECT id, document_name, client_id, status, uploaded_at
        FROM documents WHERE client_id=$1 ORDER BY uploaded_at DESC`

	rows, err := r.pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		var doc domain.Document
		if err := rows.Scan(&doc.ID, &doc.Name, &doc.ClientID, &doc.Status, &doc.UploadedAt); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (r *documentRepository) UpdateStatus(ctx context.Context, id int64, status domain.DocumentStatus) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE documents SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *documentRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM documents WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
