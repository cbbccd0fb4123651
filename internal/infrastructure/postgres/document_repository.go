package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/documentflow/documentflow-api/internal/domain"
	"github.com/documentflow/documentflow-api/internal/domain/entity"
	"github.com/documentflow/documentflow-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

const documentColumns = `id, user_id, filename, original_name, file_type, document_type, file_size, storage_key, storage_url, status, uploaded_at, processed_at`

// DocumentRepo implementación del puerto DocumentRepository sobre PostgreSQL.
type DocumentRepo struct {
	pool *pgxpool.Pool
}

// NewDocumentRepository construye el adaptador de persistencia para documentos.
func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepo {
	return &DocumentRepo{pool: pool}
}

// Create persiste un nuevo documento. user_id inexistente viola la FK.
func (r *DocumentRepo) Create(doc *entity.Document) error {
	query := `
		INSERT INTO documents (id, user_id, filename, original_name, file_type, document_type, file_size, storage_key, storage_url, status, uploaded_at, processed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		doc.ID, doc.UserID, doc.Filename, doc.OriginalName, doc.FileType,
		doc.DocumentType, doc.FileSize, doc.StorageKey, doc.StorageURL,
		doc.Status, doc.UploadedAt, doc.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// GetByID obtiene un documento por ID. Devuelve (nil, nil) si no existe.
func (r *DocumentRepo) GetByID(id string) (*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	var d entity.Document
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.UserID, &d.Filename, &d.OriginalName, &d.FileType,
		&d.DocumentType, &d.FileSize, &d.StorageKey, &d.StorageURL,
		&d.Status, &d.UploadedAt, &d.ProcessedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document by id: %w", err)
	}
	return &d, nil
}

// ListByUser lista los documentos de un usuario aplicando los filtros,
// ordenados por fecha de subida descendente.
func (r *DocumentRepo) ListByUser(userID string, filters repository.DocumentFilters) ([]*entity.Document, error) {
	filters.UserID = userID
	return r.list(filters)
}

// ListAll lista documentos de todos los usuarios (vista de administración).
func (r *DocumentRepo) ListAll(filters repository.DocumentFilters) ([]*entity.Document, error) {
	return r.list(filters)
}

func (r *DocumentRepo) list(filters repository.DocumentFilters) ([]*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents`
	var conds []string
	var args []any

	if filters.UserID != "" {
		args = append(args, filters.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(original_name ILIKE $%d OR document_type ILIKE $%d)", n, n))
	}
	if filters.Type != "" && filters.Type != "all" {
		args = append(args, filters.Type)
		conds = append(conds, fmt.Sprintf("document_type = $%d", len(args)))
	}
	if filters.Status != "" && filters.Status != "all" {
		args = append(args, filters.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filters.Date != nil {
		args = append(args, *filters.Date)
		conds = append(conds, fmt.Sprintf("uploaded_at::date = $%d::date", len(args)))
	}
	query += whereClause(conds) + ` ORDER BY uploaded_at DESC`
	if filters.Limit > 0 {
		args = append(args, filters.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var list []*entity.Document
	for rows.Next() {
		var d entity.Document
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.Filename, &d.OriginalName, &d.FileType,
			&d.DocumentType, &d.FileSize, &d.StorageKey, &d.StorageURL,
			&d.Status, &d.UploadedAt, &d.ProcessedAt,
		); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de revisión y devuelve la fila actualizada.
// processedAt se fija al pasar a "processed" y se limpia en otro caso.
func (r *DocumentRepo) UpdateStatus(id, status string, processedAt *time.Time) (*entity.Document, error) {
	query := `
		UPDATE documents SET status = $2, processed_at = $3
		WHERE id = $1
		RETURNING ` + documentColumns
	var d entity.Document
	err := r.pool.QueryRow(context.Background(), query, id, status, processedAt).Scan(
		&d.ID, &d.UserID, &d.Filename, &d.OriginalName, &d.FileType,
		&d.DocumentType, &d.FileSize, &d.StorageKey, &d.StorageURL,
		&d.Status, &d.UploadedAt, &d.ProcessedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update document status: %w", err)
	}
	return &d, nil
}

// Delete elimina la fila del documento (el blob lo borra el caso de uso).
func (r *DocumentRepo) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
