package dto

import "time"

// UploadDocumentInput entrada del caso de uso de subida (los bytes vienen del
// form multipart).
type UploadDocumentInput struct {
	UserID       string
	DocumentType string
	OriginalName string
	ContentType  string
	Data         []byte
}

// UpdateDocumentStatusRequest cambio de estado de revisión.
type UpdateDocumentStatusRequest struct {
	Status string `json:"status"`
}

// DocumentResponse fila serializada de documento.
type DocumentResponse struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	Filename     string     `json:"filename"`
	OriginalName string     `json:"originalName"`
	FileType     string     `json:"fileType"`
	DocumentType string     `json:"documentType"`
	FileSize     int64      `json:"fileSize"`
	StorageURL   string     `json:"storageUrl"`
	Status       string     `json:"status"`
	UploadedAt   time.Time  `json:"uploadedAt"`
	ProcessedAt  *time.Time `json:"processedAt"`
}

// DocumentOwner resumen del dueño para los listados de administración.
type DocumentOwner struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// DocumentWithUserResponse documento más el resumen de su dueño.
type DocumentWithUserResponse struct {
	DocumentResponse
	User *DocumentOwner `json:"user"`
}
