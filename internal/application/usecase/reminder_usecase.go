package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/documentflow/documentflow-api/internal/application/dto"
	"github.com/documentflow/documentflow-api/internal/domain"
	"github.com/documentflow/documentflow-api/internal/domain/entity"
	"github.com/documentflow/documentflow-api/internal/domain/repository"
	"github.com/documentflow/documentflow-api/internal/infrastructure/mail"
	"github.com/documentflow/documentflow-api/pkg/logger"
)

// ReminderUseCase casos de uso de recordatorios. No hay scheduler: el envío
// lo dispara un administrador de forma explícita.
type ReminderUseCase struct {
	reminders repository.ReminderRepository
	deadlines repository.DeadlineRepository
	users     repository.UserRepository
	inApp     repository.NotificationRepository
	mailer    *mail.Mailer
	log       *logger.Logger
}

// NewReminderUseCase construye el caso de uso.
func NewReminderUseCase(
	reminders repository.ReminderRepository,
	deadlines repository.DeadlineRepository,
	users repository.UserRepository,
	inApp repository.NotificationRepository,
	mailer *mail.Mailer,
	log *logger.Logger,
) *ReminderUseCase {
	return &ReminderUseCase{
		reminders: reminders,
		deadlines: deadlines,
		users:     users,
		inApp:     inApp,
		mailer:    mailer,
		log:       log,
	}
}

// Create crea un recordatorio ligado a una fecha límite existente. El usuario
// destino se hereda del deadline (vacío cuando es global).
func (uc *ReminderUseCase) Create(in dto.CreateReminderRequest) (*dto.ReminderResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	deadline, err := uc.deadlines.GetByID(in.DeadlineID)
	if err != nil {
		return nil, err
	}
	if deadline == nil {
		return nil, domain.ErrNotFound
	}

	userID := in.UserID
	if deadline.IsGlobal {
		userID = ""
	} else if userID == "" {
		userID = deadline.UserID
	}

	reminder := &entity.Reminder{
		ID:           uuid.New().String(),
		DeadlineID:   in.DeadlineID,
		UserID:       userID,
		ReminderType: in.ReminderType,
		ReminderTime: in.ReminderTime,
		CreatedAt:    time.Now(),
	}
	if err := uc.reminders.Create(reminder); err != nil {
		return nil, err
	}
	return toReminderResponse(reminder), nil
}

// ListAll lista todos los recordatorios configurados.
func (uc *ReminderUseCase) ListAll() ([]*dto.ReminderResponse, error) {
	reminders, err := uc.reminders.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ReminderResponse, 0, len(reminders))
	for _, r := range reminders {
		out = append(out, toReminderResponse(r))
	}
	return out, nil
}

// Update aplica una actualización parcial sobre los campos presentes.
func (uc *ReminderUseCase) Update(id string, in dto.UpdateReminderRequest) (*dto.ReminderResponse, error) {
	reminder, err := uc.reminders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if reminder == nil {
		return nil, nil
	}

	if in.ReminderType != nil {
		switch *in.ReminderType {
		case entity.ReminderTypeEmail, entity.ReminderTypeSMS, entity.ReminderTypePush:
		default:
			return nil, domain.ErrInvalidInput
		}
		reminder.ReminderType = *in.ReminderType
	}
	if in.ReminderTime != nil {
		reminder.ReminderTime = *in.ReminderTime
	}
	if in.IsSent != nil {
		reminder.IsSent = *in.IsSent
	}

	if err := uc.reminders.Update(reminder); err != nil {
		return nil, err
	}
	return toReminderResponse(reminder), nil
}

// Delete elimina un recordatorio.
func (uc *ReminderUseCase) Delete(id string) error {
	return uc.reminders.Delete(id)
}

// Send envía el recordatorio ahora: correo a los destinatarios resueltos
// (todos los usuarios si el deadline es global, el dueño en caso contrario)
// y notificación in-app a cada uno. IsSent se marca solo tras envío exitoso.
func (uc *ReminderUseCase) Send(id string) (*dto.ReminderResponse, error) {
	reminder, err := uc.reminders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if reminder == nil {
		return nil, domain.ErrNotFound
	}

	deadline, err := uc.deadlines.GetByID(reminder.DeadlineID)
	if err != nil {
		return nil, err
	}
	if deadline == nil {
		return nil, domain.ErrNotFound
	}

	recipients, err := uc.resolveRecipients(deadline)
	if err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(recipients))
	for _, u := range recipients {
		emails = append(emails, u.Email)
	}
	if err := uc.mailer.SendReminder(emails, deadline); err != nil {
		return nil, fmt.Errorf("enviar recordatorio: %w", err)
	}

	now := time.Now()
	for _, u := range recipients {
		notification := &entity.Notification{
			ID:      uuid.New().String(),
			UserID:  u.ID,
			Type:    entity.NotificationTypeReminder,
			Title:   fmt.Sprintf("Recordatorio: %s", deadline.Title),
			Message: fmt.Sprintf("Tienes pendiente entregar \"%s\" antes del %s.", deadline.Title, deadline.DueDate.Format("02/01/2006")),
			SentAt:  now,
		}
		if err := uc.inApp.Create(notification); err != nil {
			uc.log.Warn().Err(err).Str("user_id", u.ID).
				Msg("no se pudo crear la notificación del recordatorio")
		}
	}

	if err := uc.reminders.MarkSent(reminder.ID); err != nil {
		return nil, err
	}
	reminder.IsSent = true
	return toReminderResponse(reminder), nil
}

// resolveRecipients resuelve los usuarios destino de un deadline: todos los
// usuarios registrados si es global, el dueño en caso contrario.
func (uc *ReminderUseCase) resolveRecipients(deadline *entity.Deadline) ([]*entity.User, error) {
	if deadline.IsGlobal {
		return uc.users.List(repository.UserFilters{})
	}
	user, err := uc.users.GetByID(deadline.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return []*entity.User{user}, nil
}

func toReminderResponse(r *entity.Reminder) *dto.ReminderResponse {
	return &dto.ReminderResponse{
		ID:           r.ID,
		DeadlineID:   r.DeadlineID,
		UserID:       r.UserID,
		ReminderType: r.ReminderType,
		ReminderTime: r.ReminderTime,
		IsSent:       r.IsSent,
		CreatedAt:    r.CreatedAt,
	}
}
