package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/documentflow/documentflow-api/internal/application/dto"
	"github.com/documentflow/documentflow-api/internal/domain"
	"github.com/documentflow/documentflow-api/internal/domain/entity"
	"github.com/documentflow/documentflow-api/internal/domain/repository"
)

// NotificationUseCase casos de uso de notificaciones in-app.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(notifications repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications}
}

// Create crea una notificación manual.
func (uc *NotificationUseCase) Create(in dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	notification := &entity.Notification{
		ID:           uuid.New().String(),
		UserID:       in.UserID,
		Type:         in.Type,
		Title:        in.Title,
		Message:      in.Message,
		SentAt:       time.Now(),
		ScheduledFor: in.ScheduledFor,
	}
	if err := uc.notifications.Create(notification); err != nil {
		return nil, err
	}
	return toNotificationResponse(notification), nil
}

// ListByUser lista las notificaciones del usuario, más recientes primero.
func (uc *NotificationUseCase) ListByUser(userID string) ([]*dto.NotificationResponse, error) {
	notifications, err := uc.notifications.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, toNotificationResponse(n))
	}
	return out, nil
}

// MarkRead marca una notificación como leída. Es idempotente: marcar una ya
// leída no es error.
func (uc *NotificationUseCase) MarkRead(id string) error {
	return uc.notifications.MarkRead(id)
}

// Delete elimina una notificación.
func (uc *NotificationUseCase) Delete(id string) error {
	return uc.notifications.Delete(id)
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:           n.ID,
		UserID:       n.UserID,
		Type:         n.Type,
		Title:        n.Title,
		Message:      n.Message,
		IsRead:       n.IsRead,
		SentAt:       n.SentAt,
		ScheduledFor: n.ScheduledFor,
	}
}
