package dto

import (
	"errors"
	"time"

	"github.com/documentflow/documentflow-api/internal/domain/entity"
)

// CreateUserRequest alta de usuario (registro propio o alta por admin).
type CreateUserRequest struct {
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	Department  string `json:"department"`
	Role        string `json:"role"`
	FirebaseUID string `json:"firebaseUid"`
}

// Validate valida los campos requeridos y aplica el rol por defecto.
func (r *CreateUserRequest) Validate() error {
	if r.Email == "" || r.FirstName == "" || r.LastName == "" || r.Department == "" {
		return errors.New("email, firstName, lastName y department son requeridos")
	}
	if r.Role == "" {
		r.Role = entity.RoleUser
	}
	if r.Role != entity.RoleUser && r.Role != entity.RoleAdmin {
		return errors.New("role debe ser user o admin")
	}
	return nil
}

// UpdateUserRequest actualización parcial de usuario (solo admin).
type UpdateUserRequest struct {
	Email      *string `json:"email"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Phone      *string `json:"phone"`
	Department *string `json:"department"`
	Role       *string `json:"role"`
}

// UserResponse fila serializada de usuario.
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Phone       string    `json:"phone"`
	Department  string    `json:"department"`
	Role        string    `json:"role"`
	FirebaseUID string    `json:"firebaseUid"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UserStatsResponse resumen del dashboard personal.
type UserStatsResponse struct {
	Uploaded   int `json:"uploaded"`
	Pending    int `json:"pending"`
	Upcoming   int `json:"upcoming"`
	Compliance int `json:"compliance"`
}

// ActivityItem entrada del feed de actividad reciente.
type ActivityItem struct {
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserStatusResponse fila del roster de administración: usuario más su
// estado de entrega derivado.
type UserStatusResponse struct {
	UserResponse
	DocumentsUploaded int        `json:"documentsUploaded"`
	DocumentsRequired int        `json:"documentsRequired"`
	DocumentsCount    int        `json:"documentsCount"`
	Status            string     `json:"status"`
	LastActivity      *time.Time `json:"lastActivity"`
}
