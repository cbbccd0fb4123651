package dto

import (
	"errors"
	"time"

	"github.com/documentflow/documentflow-api/internal/domain/entity"
)

// CreateReminderRequest alta de recordatorio ligado a una fecha límite.
type CreateReminderRequest struct {
	DeadlineID   string    `json:"deadlineId"`
	UserID       string    `json:"userId"`
	ReminderType string    `json:"reminderType"`
	ReminderTime time.Time `json:"reminderTime"`
}

// Validate valida los campos requeridos y el canal de envío.
func (r *CreateReminderRequest) Validate() error {
	if r.DeadlineID == "" || r.ReminderType == "" || r.ReminderTime.IsZero() {
		return errors.New("deadlineId, reminderType y reminderTime son requeridos")
	}
	switch r.ReminderType {
	case entity.ReminderTypeEmail, entity.ReminderTypeSMS, entity.ReminderTypePush:
		return nil
	}
	return errors.New("reminderType debe ser email, sms o push")
}

// UpdateReminderRequest actualización parcial de recordatorio.
type UpdateReminderRequest struct {
	ReminderType *string    `json:"reminderType"`
	ReminderTime *time.Time `json:"reminderTime"`
	IsSent       *bool      `json:"isSent"`
}

// ReminderResponse fila serializada de recordatorio.
type ReminderResponse struct {
	ID           string    `json:"id"`
	DeadlineID   string    `json:"deadlineId"`
	UserID       string    `json:"userId"`
	ReminderType string    `json:"reminderType"`
	ReminderTime time.Time `json:"reminderTime"`
	IsSent       bool      `json:"isSent"`
	CreatedAt    time.Time `json:"createdAt"`
}
