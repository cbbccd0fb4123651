package repository

import (
	"time"

	"github.com/documentflow/documentflow-api/internal/domain/entity"
)

// DocumentFilters criterios de listado de documentos. Todos opcionales;
// "all" en Type/Status equivale a vacío.
type DocumentFilters struct {
	Search string     // substring sobre original_name y document_type
	Type   string     // match exacto de document_type
	Status string     // match exacto de status
	Date   *time.Time // match por día exacto de uploaded_at
	UserID string     // match exacto (solo listados de admin)
	Limit  int        // 0 = sin límite
}

// DocumentRepository define el puerto de persistencia para Document.
// Los listados ordenan por uploaded_at descendente.
type DocumentRepository interface {
	Create(doc *entity.Document) error
	GetByID(id string) (*entity.Document, error)
	ListByUser(userID string, filters DocumentFilters) ([]*entity.Document, error)
	ListAll(filters DocumentFilters) ([]*entity.Document, error)
	UpdateStatus(id, status string, processedAt *time.Time) (*entity.Document, error)
	Delete(id string) error
}
