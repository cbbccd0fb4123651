package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/documentflow/documentflow-api/internal/application/dto"
	"github.com/documentflow/documentflow-api/internal/domain"
	"github.com/documentflow/documentflow-api/internal/domain/entity"
	"github.com/documentflow/documentflow-api/internal/infrastructure/mail"
	"github.com/documentflow/documentflow-api/pkg/config"
	"github.com/documentflow/documentflow-api/pkg/logger"
)

func newReminderUC() (*ReminderUseCase, *fakeReminderRepo, *fakeDeadlineRepo, *fakeUserRepo, *fakeNotificationRepo) {
	reminders := newFakeReminderRepo()
	deadlines := newFakeDeadlineRepo()
	users := newFakeUserRepo()
	notifications := newFakeNotificationRepo()
	mailer := mail.NewMailer(config.SMTPConfig{}, "http://localhost:3000", logger.Nop())
	uc := NewReminderUseCase(reminders, deadlines, users, notifications, mailer, logger.Nop())
	return uc, reminders, deadlines, users, notifications
}

func TestReminderCreate(t *testing.T) {
	uc, _, deadlines, _, _ := newReminderUC()
	deadlines.Create(&entity.Deadline{ID: "dl1", UserID: "u1", DocumentType: "contract", DueDate: time.Now().AddDate(0, 0, 5)})

	resp, err := uc.Create(dto.CreateReminderRequest{
		DeadlineID:   "dl1",
		ReminderType: entity.ReminderTypeEmail,
		ReminderTime: time.Now().AddDate(0, 0, 3),
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.UserID) // heredado del deadline
	assert.False(t, resp.IsSent)

	// deadline inexistente
	_, err = uc.Create(dto.CreateReminderRequest{
		DeadlineID:   "no-existe",
		ReminderType: entity.ReminderTypeEmail,
		ReminderTime: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// canal inválido
	_, err = uc.Create(dto.CreateReminderRequest{
		DeadlineID:   "dl1",
		ReminderType: "paloma",
		ReminderTime: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReminderSendGlobal(t *testing.T) {
	uc, reminders, deadlines, users, notifications := newReminderUC()

	users.Create(&entity.User{ID: "u1", Email: "u1@empresa.com"})
	users.Create(&entity.User{ID: "u2", Email: "u2@empresa.com"})
	deadlines.Create(&entity.Deadline{ID: "dl1", IsGlobal: true, Title: "Cierre anual", DocumentType: "contract", DueDate: time.Now().AddDate(0, 0, 5)})
	reminders.Create(&entity.Reminder{ID: "r1", DeadlineID: "dl1", ReminderType: entity.ReminderTypeEmail, ReminderTime: time.Now()})

	resp, err := uc.Send("r1")
	require.NoError(t, err)
	assert.True(t, resp.IsSent)

	// notificación in-app para cada usuario
	for _, userID := range []string{"u1", "u2"} {
		list, err := notifications.ListByUser(userID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, entity.NotificationTypeReminder, list[0].Type)
	}

	stored, err := reminders.GetByID("r1")
	require.NoError(t, err)
	assert.True(t, stored.IsSent)
}

func TestReminderSendDirigido(t *testing.T) {
	uc, reminders, deadlines, users, notifications := newReminderUC()

	users.Create(&entity.User{ID: "u1", Email: "u1@empresa.com"})
	users.Create(&entity.User{ID: "u2", Email: "u2@empresa.com"})
	deadlines.Create(&entity.Deadline{ID: "dl1", UserID: "u1", Title: "Contrato", DocumentType: "contract", DueDate: time.Now().AddDate(0, 0, 5)})
	reminders.Create(&entity.Reminder{ID: "r1", DeadlineID: "dl1", UserID: "u1", ReminderType: entity.ReminderTypeEmail, ReminderTime: time.Now()})

	_, err := uc.Send("r1")
	require.NoError(t, err)

	list, err := notifications.ListByUser("u1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	otros, err := notifications.ListByUser("u2")
	require.NoError(t, err)
	assert.Empty(t, otros) // el recordatorio dirigido no toca a u2
}

func TestReminderSendNoEncontrado(t *testing.T) {
	uc, reminders, _, _, _ := newReminderUC()

	_, err := uc.Send("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// recordatorio con deadline borrado
	reminders.Create(&entity.Reminder{ID: "r1", DeadlineID: "dl-borrado", ReminderType: entity.ReminderTypeEmail, ReminderTime: time.Now()})
	_, err = uc.Send("r1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNotificationMarkReadIdempotente(t *testing.T) {
	notifications := newFakeNotificationRepo()
	uc := NewNotificationUseCase(notifications)

	created, err := uc.Create(dto.CreateNotificationRequest{
		UserID:  "u1",
		Type:    entity.NotificationTypeDeadline,
		Title:   "Fecha límite próxima",
		Message: "Entrega tu contrato",
	})
	require.NoError(t, err)

	require.NoError(t, uc.MarkRead(created.ID))
	require.NoError(t, uc.MarkRead(created.ID)) // segunda vez no es error

	list, err := uc.ListByUser("u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsRead)
}
