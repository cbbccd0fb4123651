package http

import (
	"errors"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/documentflow/documentflow-api/internal/application/dto"
	"github.com/documentflow/documentflow-api/internal/application/usecase"
	"github.com/documentflow/documentflow-api/internal/domain"
	"github.com/documentflow/documentflow-api/internal/domain/repository"
)

// DocumentHandler maneja las peticiones HTTP para Document.
type DocumentHandler struct {
	uc *usecase.DocumentUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *usecase.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// documentFilters arma los filtros de listado desde la query string.
func documentFilters(c *fiber.Ctx) repository.DocumentFilters {
	filters := repository.DocumentFilters{
		Search: c.Query("search"),
		Type:   c.Query("type"),
		Status: c.Query("status"),
		UserID: c.Query("userId"),
		Limit:  c.QueryInt("limit"),
	}
	if raw := c.Query("date"); raw != "" {
		if d, err := time.Parse("2006-01-02", raw); err == nil {
			filters.Date = &d
		}
	}
	return filters
}

// Upload godoc
// @Summary      Subir documento
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        file          formData  file    true   "Archivo (máx. 50MB)"
// @Param        userId        formData  string  true   "ID del usuario"
// @Param        documentType  formData  string  true   "Tipo de documento requerido"
// @Param        originalName  formData  string  false  "Nombre original (por defecto el del archivo)"
// @Success      201  {object}  dto.DocumentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/documents [post]
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "archivo requerido"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}

	originalName := c.FormValue("originalName")
	if originalName == "" {
		originalName = fileHeader.Filename
	}

	in := dto.UploadDocumentInput{
		UserID:       c.FormValue("userId"),
		DocumentType: c.FormValue("documentType"),
		OriginalName: originalName,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Data:         data,
	}
	out, err := h.uc.Upload(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFileTooLarge):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "el archivo excede el tamaño máximo de 50MB"})
		case errors.Is(err, domain.ErrFileTypeNotAllowed):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FILE_TYPE", Message: "tipo de archivo no permitido"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "userId, documentType y archivo son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByUser godoc
// @Summary      Listar documentos de un usuario
// @Tags         documents
// @Produce      json
// @Param        userId  path   string  true   "ID del usuario"
// @Param        search  query  string  false  "Búsqueda por nombre o tipo"
// @Param        type    query  string  false  "Tipo de documento"
// @Param        status  query  string  false  "Estado de revisión"
// @Param        date    query  string  false  "Día de subida (YYYY-MM-DD)"
// @Param        limit   query  int     false  "Límite"
// @Success      200  {array}  dto.DocumentResponse
// @Router       /api/documents/{userId} [get]
func (h *DocumentHandler) ListByUser(c *fiber.Ctx) error {
	out, err := h.uc.ListByUser(c.Params("userId"), documentFilters(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Recent godoc
// @Summary      Últimas subidas del usuario
// @Tags         documents
// @Produce      json
// @Param        userId  path  string  true  "ID del usuario"
// @Success      200  {array}  dto.DocumentResponse
// @Router       /api/documents/recent/{userId} [get]
func (h *DocumentHandler) Recent(c *fiber.Ctx) error {
	out, err := h.uc.Recent(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de revisión
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        documentId  path  string                          true  "ID del documento"
// @Param        body        body  dto.UpdateDocumentStatusRequest  true  "Nuevo estado"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/{documentId}/status [patch]
func (h *DocumentHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateDocumentStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStatus(c.Params("documentId"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "documento no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser pending, processed o rejected"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar documento
// @Tags         documents
// @Produce      json
// @Param        documentId  path  string  true  "ID del documento"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/{documentId} [delete]
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("documentId")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "documento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "documento eliminado"})
}
