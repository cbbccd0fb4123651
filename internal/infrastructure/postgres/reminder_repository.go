package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/documentflow/documentflow-api/internal/domain"
	"github.com/documentflow/documentflow-api/internal/domain/entity"
	"github.com/documentflow/documentflow-api/internal/domain/repository"
)

var _ repository.ReminderRepository = (*ReminderRepo)(nil)

const reminderColumns = `id, deadline_id, COALESCE(user_id, ''), reminder_type, reminder_time, is_sent, created_at`

// ReminderRepo implementación del puerto ReminderRepository sobre PostgreSQL.
type ReminderRepo struct {
	pool *pgxpool.Pool
}

// NewReminderRepository construye el adaptador de persistencia para recordatorios.
func NewReminderRepository(pool *pgxpool.Pool) *ReminderRepo {
	return &ReminderRepo{pool: pool}
}

// Create persiste un nuevo recordatorio. deadline_id inexistente viola la FK.
func (r *ReminderRepo) Create(reminder *entity.Reminder) error {
	query := `
		INSERT INTO reminders (id, deadline_id, user_id, reminder_type, reminder_time, is_sent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		reminder.ID, reminder.DeadlineID, nullIfEmpty(reminder.UserID),
		reminder.ReminderType, reminder.ReminderTime, reminder.IsSent, reminder.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reminder: %w", err)
	}
	return nil
}

// GetByID obtiene un recordatorio por ID. Devuelve (nil, nil) si no existe.
func (r *ReminderRepo) GetByID(id string) (*entity.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE id = $1`
	var rem entity.Reminder
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&rem.ID, &rem.DeadlineID, &rem.UserID, &rem.ReminderType,
		&rem.ReminderTime, &rem.IsSent, &rem.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reminder by id: %w", err)
	}
	return &rem, nil
}

// ListAll lista todos los recordatorios, más recientes primero.
func (r *ReminderRepo) ListAll() ([]*entity.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Reminder
	for rows.Next() {
		var rem entity.Reminder
		if err := rows.Scan(
			&rem.ID, &rem.DeadlineID, &rem.UserID, &rem.ReminderType,
			&rem.ReminderTime, &rem.IsSent, &rem.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		list = append(list, &rem)
	}
	return list, rows.Err()
}

// Update sobreescribe la fila completa del recordatorio.
func (r *ReminderRepo) Update(reminder *entity.Reminder) error {
	query := `
		UPDATE reminders
		SET deadline_id = $2, user_id = $3, reminder_type = $4,
		    reminder_time = $5, is_sent = $6
		WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query,
		reminder.ID, reminder.DeadlineID, nullIfEmpty(reminder.UserID),
		reminder.ReminderType, reminder.ReminderTime, reminder.IsSent,
	)
	if err != nil {
		return fmt.Errorf("update reminder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkSent marca el recordatorio como enviado. Se llama después de un envío
// exitoso; no es atómico con el envío.
func (r *ReminderRepo) MarkSent(id string) error {
	tag, err := r.pool.Exec(context.Background(),
		`UPDATE reminders SET is_sent = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark reminder sent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un recordatorio por ID.
func (r *ReminderRepo) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM reminders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
