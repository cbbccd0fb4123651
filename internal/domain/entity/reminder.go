package entity

import "time"

// Canales de envío de un Reminder.
const (
	ReminderTypeEmail = "email"
	ReminderTypeSMS   = "sms"
	ReminderTypePush  = "push"
)

// Reminder es una campaña de recordatorio ligada a un Deadline. No hay
// scheduler: el envío lo dispara un administrador de forma explícita y
// IsSent se marca después de un envío exitoso.
type Reminder struct {
	ID           string
	DeadlineID   string
	UserID       string // vacío cuando el deadline es global
	ReminderType string // email, sms, push
	ReminderTime time.Time
	IsSent       bool
	CreatedAt    time.Time
}
