package repository

import (
	"time"

	"github.com/documentflow/documentflow-api/internal/domain/entity"
)

// DeadlineRepository define el puerto de persistencia para Deadline.
// ListForUser incluye las fechas límite globales; ordena por due_date ascendente.
type DeadlineRepository interface {
	Create(deadline *entity.Deadline) error
	GetByID(id string) (*entity.Deadline, error)
	ListForUser(userID string) ([]*entity.Deadline, error)
	ListUpcoming(userID string, from, until time.Time, limit int) ([]*entity.Deadline, error)
	Update(deadline *entity.Deadline) error
	Delete(id string) error
}
