package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/documentflow/documentflow-api/internal/application/dto"
	"github.com/documentflow/documentflow-api/internal/domain"
	"github.com/documentflow/documentflow-api/internal/domain/entity"
	"github.com/documentflow/documentflow-api/internal/domain/repository"
	"github.com/documentflow/documentflow-api/internal/infrastructure/mail"
	"github.com/documentflow/documentflow-api/pkg/config"
	"github.com/documentflow/documentflow-api/pkg/logger"
)

func newDocumentUC() (*DocumentUseCase, *fakeUserRepo, *fakeDocumentRepo, *fakeNotificationRepo, *fakeFileStore) {
	users := newFakeUserRepo()
	docs := newFakeDocumentRepo()
	notifications := newFakeNotificationRepo()
	store := newFakeFileStore()
	mailer := mail.NewMailer(config.SMTPConfig{}, "http://localhost:3000", logger.Nop())
	uc := NewDocumentUseCase(docs, users, notifications, store, mailer, logger.Nop())
	return uc, users, docs, notifications, store
}

func validUpload() dto.UploadDocumentInput {
	return dto.UploadDocumentInput{
		UserID:       "u1",
		DocumentType: "identification",
		OriginalName: "cedula.pdf",
		ContentType:  "application/pdf",
		Data:         []byte("%PDF-1.4 contenido"),
	}
}

func TestDocumentUpload(t *testing.T) {
	uc, users, _, notifications, store := newDocumentUC()
	users.Create(&entity.User{ID: "u1", Email: "ana@empresa.com"})

	resp, err := uc.Upload(context.Background(), validUpload())
	require.NoError(t, err)
	assert.Equal(t, entity.DocumentStatusPending, resp.Status)
	assert.Equal(t, entity.FileTypePDF, resp.FileType)
	assert.Equal(t, int64(18), resp.FileSize)
	assert.Equal(t, 1, store.saves)

	// notificación in-app de subida
	list, err := notifications.ListByUser("u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.NotificationTypeUploadSuccess, list[0].Type)
}

func TestDocumentUploadValidaciones(t *testing.T) {
	uc, users, _, _, _ := newDocumentUC()
	users.Create(&entity.User{ID: "u1", Email: "ana@empresa.com"})

	t.Run("archivo demasiado grande", func(t *testing.T) {
		in := validUpload()
		in.Data = make([]byte, MaxFileSize+1)
		_, err := uc.Upload(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	})

	t.Run("tipo no permitido", func(t *testing.T) {
		in := validUpload()
		in.ContentType = "application/x-msdownload"
		_, err := uc.Upload(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrFileTypeNotAllowed)
	})

	t.Run("usuario inexistente", func(t *testing.T) {
		in := validUpload()
		in.UserID = "fantasma"
		_, err := uc.Upload(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("sin datos", func(t *testing.T) {
		in := validUpload()
		in.Data = nil
		_, err := uc.Upload(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestDocumentUpdateStatus(t *testing.T) {
	uc, _, docs, _, _ := newDocumentUC()
	docs.Create(&entity.Document{ID: "d1", UserID: "u1", Status: entity.DocumentStatusPending, UploadedAt: time.Now()})

	resp, err := uc.UpdateStatus("d1", dto.UpdateDocumentStatusRequest{Status: entity.DocumentStatusProcessed})
	require.NoError(t, err)
	assert.Equal(t, entity.DocumentStatusProcessed, resp.Status)
	require.NotNil(t, resp.ProcessedAt)

	// volver a pending limpia processedAt
	resp, err = uc.UpdateStatus("d1", dto.UpdateDocumentStatusRequest{Status: entity.DocumentStatusPending})
	require.NoError(t, err)
	assert.Nil(t, resp.ProcessedAt)

	// rechazar no sella processedAt: solo "processed" lo hace
	resp, err = uc.UpdateStatus("d1", dto.UpdateDocumentStatusRequest{Status: entity.DocumentStatusRejected})
	require.NoError(t, err)
	assert.Equal(t, entity.DocumentStatusRejected, resp.Status)
	assert.Nil(t, resp.ProcessedAt)

	_, err = uc.UpdateStatus("d1", dto.UpdateDocumentStatusRequest{Status: "aprobadisimo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateStatus("no-existe", dto.UpdateDocumentStatusRequest{Status: entity.DocumentStatusProcessed})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentDelete(t *testing.T) {
	uc, users, _, _, store := newDocumentUC()
	users.Create(&entity.User{ID: "u1", Email: "ana@empresa.com"})

	resp, err := uc.Upload(context.Background(), validUpload())
	require.NoError(t, err)
	require.Len(t, store.blobs, 1)

	require.NoError(t, uc.Delete(context.Background(), resp.ID))
	assert.Empty(t, store.blobs)

	// segundo borrado: ya no existe
	err = uc.Delete(context.Background(), resp.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentListAllConDueno(t *testing.T) {
	uc, users, docs, _, _ := newDocumentUC()
	users.Create(&entity.User{ID: "u1", Email: "ana@empresa.com", FirstName: "Ana", LastName: "García", Department: "Finanzas"})
	docs.Create(&entity.Document{ID: "d1", UserID: "u1", UploadedAt: time.Now()})
	docs.Create(&entity.Document{ID: "d2", UserID: "huerfano", UploadedAt: time.Now()})

	list, err := uc.ListAll(repository.DocumentFilters{})
	require.NoError(t, err)
	require.Len(t, list, 2)

	for _, item := range list {
		if item.UserID == "u1" {
			require.NotNil(t, item.User)
			assert.Equal(t, "Ana", item.User.FirstName)
			assert.Equal(t, "Finanzas", item.User.Department)
		} else {
			assert.Nil(t, item.User)
		}
	}
}
