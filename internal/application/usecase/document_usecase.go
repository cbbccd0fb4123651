package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/documentflow/documentflow-api/internal/application/dto"
	"github.com/documentflow/documentflow-api/internal/domain"
	"github.com/documentflow/documentflow-api/internal/domain/entity"
	"github.com/documentflow/documentflow-api/internal/domain/repository"
	"github.com/documentflow/documentflow-api/internal/infrastructure/mail"
	"github.com/documentflow/documentflow-api/internal/infrastructure/storage"
	"github.com/documentflow/documentflow-api/pkg/logger"
)

// MaxFileSize tamaño máximo de archivo aceptado (50 MB).
const MaxFileSize = 50 * 1024 * 1024

// allowedContentTypes tipos MIME aceptados en la subida.
var allowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"application/pdf": true,
	"video/mp4":       true,
	"video/quicktime": true,
}

// DocumentUseCase casos de uso de documentos: subida con almacenamiento de
// blobs, listados filtrados, revisión y borrado.
type DocumentUseCase struct {
	documents     repository.DocumentRepository
	users         repository.UserRepository
	notifications repository.NotificationRepository
	store         storage.FileStore
	mailer        *mail.Mailer
	log           *logger.Logger
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(
	documents repository.DocumentRepository,
	users repository.UserRepository,
	notifications repository.NotificationRepository,
	store storage.FileStore,
	mailer *mail.Mailer,
	log *logger.Logger,
) *DocumentUseCase {
	return &DocumentUseCase{
		documents:     documents,
		users:         users,
		notifications: notifications,
		store:         store,
		mailer:        mailer,
		log:           log,
	}
}

// fileTypeFor deriva la categoría de archivo a partir del content type.
func fileTypeFor(contentType string) string {
	switch contentType {
	case "application/pdf":
		return entity.FileTypePDF
	case "image/jpeg", "image/png", "image/gif":
		return entity.FileTypeImage
	case "video/mp4", "video/quicktime":
		return entity.FileTypeVideo
	default:
		return entity.FileTypeOther
	}
}

// Upload valida el archivo, lo guarda en el backend de blobs, registra la fila
// y notifica al dueño (in-app siempre, correo best-effort).
func (uc *DocumentUseCase) Upload(ctx context.Context, in dto.UploadDocumentInput) (*dto.DocumentResponse, error) {
	if in.UserID == "" || in.DocumentType == "" || in.OriginalName == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Data) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Data) > MaxFileSize {
		return nil, domain.ErrFileTooLarge
	}
	if !allowedContentTypes[in.ContentType] {
		return nil, domain.ErrFileTypeNotAllowed
	}

	user, err := uc.users.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	stored, err := uc.store.Save(ctx, in.Data, in.OriginalName, in.UserID, in.ContentType)
	if err != nil {
		return nil, fmt.Errorf("guardar archivo: %w", err)
	}

	doc := &entity.Document{
		ID:           uuid.New().String(),
		UserID:       in.UserID,
		Filename:     stored.Filename,
		OriginalName: in.OriginalName,
		FileType:     fileTypeFor(in.ContentType),
		DocumentType: in.DocumentType,
		FileSize:     int64(len(in.Data)),
		StorageKey:   stored.Key,
		StorageURL:   stored.URL,
		Status:       entity.DocumentStatusPending,
		UploadedAt:   time.Now(),
	}
	if err := uc.documents.Create(doc); err != nil {
		// la fila falló: no dejar el blob huérfano
		if delErr := uc.store.Delete(ctx, stored.Key); delErr != nil {
			uc.log.Warn().Err(delErr).Str("key", stored.Key).
				Msg("no se pudo limpiar el blob tras fallo de inserción")
		}
		return nil, err
	}

	notification := &entity.Notification{
		ID:      uuid.New().String(),
		UserID:  in.UserID,
		Type:    entity.NotificationTypeUploadSuccess,
		Title:   "Documento subido exitosamente",
		Message: fmt.Sprintf("Tu documento \"%s\" fue recibido y está en revisión.", in.OriginalName),
		SentAt:  time.Now(),
	}
	if err := uc.notifications.Create(notification); err != nil {
		uc.log.Warn().Err(err).Str("document_id", doc.ID).
			Msg("no se pudo crear la notificación de subida")
	}

	go func() {
		if err := uc.mailer.SendDocumentUploaded(user, doc); err != nil {
			uc.log.Warn().Err(err).Str("email", user.Email).
				Msg("no se pudo enviar el correo de confirmación")
		}
	}()

	return toDocumentResponse(doc), nil
}

// GetByID obtiene un documento por ID.
func (uc *DocumentUseCase) GetByID(id string) (*dto.DocumentResponse, error) {
	doc, err := uc.documents.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	return toDocumentResponse(doc), nil
}

// ListByUser lista los documentos de un usuario, más recientes primero.
func (uc *DocumentUseCase) ListByUser(userID string, filters repository.DocumentFilters) ([]*dto.DocumentResponse, error) {
	docs, err := uc.documents.ListByUser(userID, filters)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentResponse(d))
	}
	return out, nil
}

// Recent devuelve las últimas 5 subidas del usuario.
func (uc *DocumentUseCase) Recent(userID string) ([]*dto.DocumentResponse, error) {
	return uc.ListByUser(userID, repository.DocumentFilters{Limit: 5})
}

// ListAll lista todos los documentos con el resumen de su dueño, para los
// listados de administración.
func (uc *DocumentUseCase) ListAll(filters repository.DocumentFilters) ([]*dto.DocumentWithUserResponse, error) {
	docs, err := uc.documents.ListAll(filters)
	if err != nil {
		return nil, err
	}

	owners := make(map[string]*dto.DocumentOwner)
	out := make([]*dto.DocumentWithUserResponse, 0, len(docs))
	for _, d := range docs {
		owner, ok := owners[d.UserID]
		if !ok {
			user, err := uc.users.GetByID(d.UserID)
			if err != nil {
				return nil, err
			}
			if user != nil {
				owner = &dto.DocumentOwner{
					FirstName:  user.FirstName,
					LastName:   user.LastName,
					Email:      user.Email,
					Department: user.Department,
				}
			}
			owners[d.UserID] = owner
		}
		out = append(out, &dto.DocumentWithUserResponse{
			DocumentResponse: *toDocumentResponse(d),
			User:             owner,
		})
	}
	return out, nil
}

// UpdateStatus cambia el estado de revisión. Solo "processed" sella
// processedAt; pending y rejected lo dejan en NULL.
func (uc *DocumentUseCase) UpdateStatus(id string, in dto.UpdateDocumentStatusRequest) (*dto.DocumentResponse, error) {
	switch in.Status {
	case entity.DocumentStatusPending, entity.DocumentStatusProcessed, entity.DocumentStatusRejected:
	default:
		return nil, domain.ErrInvalidInput
	}

	var processedAt *time.Time
	if in.Status == entity.DocumentStatusProcessed {
		now := time.Now()
		processedAt = &now
	}

	doc, err := uc.documents.UpdateStatus(id, in.Status, processedAt)
	if err != nil {
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

// Delete borra el blob y después la fila. Un segundo borrado del mismo
// documento devuelve ErrNotFound.
func (uc *DocumentUseCase) Delete(ctx context.Context, id string) error {
	doc, err := uc.documents.GetByID(id)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}

	if err := uc.store.Delete(ctx, doc.StorageKey); err != nil {
		uc.log.Warn().Err(err).Str("key", doc.StorageKey).
			Msg("no se pudo borrar el blob, se elimina la fila igualmente")
	}
	return uc.documents.Delete(id)
}

func toDocumentResponse(d *entity.Document) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		ID:           d.ID,
		UserID:       d.UserID,
		Filename:     d.Filename,
		OriginalName: d.OriginalName,
		FileType:     d.FileType,
		DocumentType: d.DocumentType,
		FileSize:     d.FileSize,
		StorageURL:   d.StorageURL,
		Status:       d.Status,
		UploadedAt:   d.UploadedAt,
		ProcessedAt:  d.ProcessedAt,
	}
}
