package entity

import "time"

// Deadline es una fecha límite para entregar un tipo de documento.
// Si IsGlobal es true aplica a todos los usuarios y UserID queda vacío.
type Deadline struct {
	ID           string
	UserID       string // vacío cuando IsGlobal
	DocumentType string
	Title        string
	Description  string
	DueDate      time.Time
	IsGlobal     bool
	CreatedBy    string
	CreatedAt    time.Time
}

// AppliesTo indica si la fecha límite aplica al usuario dado.
func (d *Deadline) AppliesTo(userID string) bool {
	return d.IsGlobal || d.UserID == userID
}
