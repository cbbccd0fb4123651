package repository

import "github.com/documentflow/documentflow-api/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para Notification.
// MarkRead es idempotente: marcar dos veces no es error.
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	GetByID(id string) (*entity.Notification, error)
	ListByUser(userID string) ([]*entity.Notification, error)
	MarkRead(id string) error
	Delete(id string) error
}
