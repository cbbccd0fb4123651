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

var _ repository.DeadlineRepository = (*DeadlineRepo)(nil)

const deadlineColumns = `id, COALESCE(user_id, ''), document_type, title, COALESCE(description, ''), due_date, is_global, COALESCE(created_by, ''), created_at`

// DeadlineRepo implementación del puerto DeadlineRepository sobre PostgreSQL.
type DeadlineRepo struct {
	pool *pgxpool.Pool
}

// NewDeadlineRepository construye el adaptador de persistencia para fechas límite.
func NewDeadlineRepository(pool *pgxpool.Pool) *DeadlineRepo {
	return &DeadlineRepo{pool: pool}
}

// Create persiste una nueva fecha límite. user_id queda NULL cuando es global.
func (r *DeadlineRepo) Create(deadline *entity.Deadline) error {
	query := `
		INSERT INTO deadlines (id, user_id, document_type, title, description, due_date, is_global, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		deadline.ID, nullIfEmpty(deadline.UserID), deadline.DocumentType,
		deadline.Title, nullIfEmpty(deadline.Description), deadline.DueDate,
		deadline.IsGlobal, nullIfEmpty(deadline.CreatedBy), deadline.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert deadline: %w", err)
	}
	return nil
}

// GetByID obtiene una fecha límite por ID. Devuelve (nil, nil) si no existe.
func (r *DeadlineRepo) GetByID(id string) (*entity.Deadline, error) {
	query := `SELECT ` + deadlineColumns + ` FROM deadlines WHERE id = $1`
	var d entity.Deadline
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.UserID, &d.DocumentType, &d.Title, &d.Description,
		&d.DueDate, &d.IsGlobal, &d.CreatedBy, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get deadline by id: %w", err)
	}
	return &d, nil
}

// ListForUser lista las fechas límite del usuario más las globales,
// ordenadas por due_date ascendente.
func (r *DeadlineRepo) ListForUser(userID string) ([]*entity.Deadline, error) {
	query := `
		SELECT ` + deadlineColumns + ` FROM deadlines
		WHERE user_id = $1 OR is_global = TRUE
		ORDER BY due_date ASC`
	return r.queryMany(query, userID)
}

// ListUpcoming lista las próximas fechas límite del usuario dentro del rango.
func (r *DeadlineRepo) ListUpcoming(userID string, from, until time.Time, limit int) ([]*entity.Deadline, error) {
	query := `
		SELECT ` + deadlineColumns + ` FROM deadlines
		WHERE (user_id = $1 OR is_global = TRUE)
		  AND due_date >= $2 AND due_date <= $3
		ORDER BY due_date ASC
		LIMIT $4`
	return r.queryMany(query, userID, from, until, limit)
}

func (r *DeadlineRepo) queryMany(query string, args ...any) ([]*entity.Deadline, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list deadlines: %w", err)
	}
	defer rows.Close()

	var list []*entity.Deadline
	for rows.Next() {
		var d entity.Deadline
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.DocumentType, &d.Title, &d.Description,
			&d.DueDate, &d.IsGlobal, &d.CreatedBy, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan deadline: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update sobreescribe la fila completa de la fecha límite.
func (r *DeadlineRepo) Update(deadline *entity.Deadline) error {
	query := `
		UPDATE deadlines
		SET user_id = $2, document_type = $3, title = $4, description = $5,
		    due_date = $6, is_global = $7
		WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query,
		deadline.ID, nullIfEmpty(deadline.UserID), deadline.DocumentType,
		deadline.Title, nullIfEmpty(deadline.Description), deadline.DueDate,
		deadline.IsGlobal,
	)
	if err != nil {
		return fmt.Errorf("update deadline: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una fecha límite por ID.
func (r *DeadlineRepo) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM deadlines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete deadline: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
