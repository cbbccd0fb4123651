package dto

import (
	"errors"
	"time"
)

// CreateNotificationRequest alta manual de notificación (eventos del sistema
// las crean internamente).
type CreateNotificationRequest struct {
	UserID       string     `json:"userId"`
	Type         string     `json:"type"`
	Title        string     `json:"title"`
	Message      string     `json:"message"`
	ScheduledFor *time.Time `json:"scheduledFor"`
}

// Validate valida los campos requeridos.
func (r *CreateNotificationRequest) Validate() error {
	if r.UserID == "" || r.Type == "" || r.Title == "" || r.Message == "" {
		return errors.New("userId, type, title y message son requeridos")
	}
	return nil
}

// NotificationResponse fila serializada de notificación.
type NotificationResponse struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	Type         string     `json:"type"`
	Title        string     `json:"title"`
	Message      string     `json:"message"`
	IsRead       bool       `json:"isRead"`
	SentAt       time.Time  `json:"sentAt"`
	ScheduledFor *time.Time `json:"scheduledFor"`
}
