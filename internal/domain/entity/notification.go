package entity

import "time"

// Tipos de Notification.
const (
	NotificationTypeUploadSuccess = "upload_success"
	NotificationTypeReminder      = "reminder"
	NotificationTypeDeadline      = "deadline"
)

// Notification es un mensaje in-app por usuario. IsRead es el único campo
// mutable después de creada.
type Notification struct {
	ID           string
	UserID       string
	Type         string // upload_success, reminder, deadline
	Title        string
	Message      string
	IsRead       bool
	SentAt       time.Time
	ScheduledFor *time.Time
}
