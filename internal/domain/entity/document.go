package entity

import "time"

// Estados de revisión de un Document.
const (
	DocumentStatusPending   = "pending"
	DocumentStatusProcessed = "processed"
	DocumentStatusRejected  = "rejected"
)

// Tipos de archivo derivados del content type al subir.
const (
	FileTypePDF   = "pdf"
	FileTypeImage = "image"
	FileTypeVideo = "video"
	FileTypeOther = "other"
)

// Document representa un archivo subido por un usuario contra un tipo de
// documento requerido (identificación, comprobante de domicilio, etc.).
// StorageKey es el localizador etiquetado del blob (backend + ruta);
// StorageURL es la URL servible que consume el cliente.
type Document struct {
	ID           string
	UserID       string
	Filename     string
	OriginalName string
	FileType     string // pdf, image, video, other
	DocumentType string // identification, address_proof, contract, ...
	FileSize     int64
	StorageKey   string
	StorageURL   string
	Status       string // pending, processed, rejected
	UploadedAt   time.Time
	ProcessedAt  *time.Time
}
