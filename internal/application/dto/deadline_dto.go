package dto

import (
	"errors"
	"time"
)

// CreateDeadlineRequest alta de fecha límite (solo admin).
type CreateDeadlineRequest struct {
	UserID       string    `json:"userId"`
	DocumentType string    `json:"documentType"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	DueDate      time.Time `json:"dueDate"`
	IsGlobal     bool      `json:"isGlobal"`
	CreatedBy    string    `json:"createdBy"`
}

// Validate valida los campos requeridos. Una fecha límite no global debe
// apuntar a un usuario concreto.
func (r *CreateDeadlineRequest) Validate() error {
	if r.Title == "" || r.DocumentType == "" || r.DueDate.IsZero() {
		return errors.New("title, documentType y dueDate son requeridos")
	}
	if !r.IsGlobal && r.UserID == "" {
		return errors.New("una fecha límite no global requiere userId")
	}
	return nil
}

// UpdateDeadlineRequest actualización parcial de fecha límite.
type UpdateDeadlineRequest struct {
	UserID       *string    `json:"userId"`
	DocumentType *string    `json:"documentType"`
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	DueDate      *time.Time `json:"dueDate"`
	IsGlobal     *bool      `json:"isGlobal"`
}

// UrgencyResponse clasificación de urgencia derivada respecto a "ahora".
type UrgencyResponse struct {
	Level    string `json:"level"`
	DaysLeft int    `json:"daysLeft"`
}

// DeadlineResponse fila serializada de fecha límite con su urgencia.
type DeadlineResponse struct {
	ID           string           `json:"id"`
	UserID       string           `json:"userId"`
	DocumentType string           `json:"documentType"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	DueDate      time.Time        `json:"dueDate"`
	IsGlobal     bool             `json:"isGlobal"`
	CreatedBy    string           `json:"createdBy"`
	CreatedAt    time.Time        `json:"createdAt"`
	Urgency      *UrgencyResponse `json:"urgency,omitempty"`
}
