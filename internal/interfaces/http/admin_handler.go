package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/documentflow/documentflow-api/internal/application/dto"
	"github.com/documentflow/documentflow-api/internal/application/usecase"
	"github.com/documentflow/documentflow-api/internal/domain"
	"github.com/documentflow/documentflow-api/internal/domain/repository"
)

// AdminHandler maneja las peticiones HTTP del panel de administración:
// dashboard, roster de usuarios y listados globales de documentos.
type AdminHandler struct {
	users     *usecase.UserUseCase
	documents *usecase.DocumentUseCase
	reporting *usecase.ReportingUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(users *usecase.UserUseCase, documents *usecase.DocumentUseCase, reporting *usecase.ReportingUseCase) *AdminHandler {
	return &AdminHandler{users: users, documents: documents, reporting: reporting}
}

func userFilters(c *fiber.Ctx) repository.UserFilters {
	return repository.UserFilters{
		Search:     c.Query("search"),
		Department: c.Query("department"),
	}
}

// Stats godoc
// @Summary      Contadores del dashboard
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AdminStatsResponse
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	out, err := h.reporting.AdminStats(c.Context(), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ComplianceByDepartment godoc
// @Summary      Cumplimiento por departamento
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DepartmentComplianceResponse
// @Router       /api/admin/compliance-by-department [get]
func (h *AdminHandler) ComplianceByDepartment(c *fiber.Ctx) error {
	out, err := h.reporting.ComplianceByDepartment(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DocumentTypes godoc
// @Summary      Documentos por tipo
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DocumentTypeStatResponse
// @Router       /api/admin/document-types [get]
func (h *AdminHandler) DocumentTypes(c *fiber.Ctx) error {
	out, err := h.reporting.DocumentTypeStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UsersStatus godoc
// @Summary      Roster de usuarios con estado de entrega
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        search      query  string  false  "Búsqueda por nombre o email"
// @Param        department  query  string  false  "Departamento"
// @Success      200  {array}  dto.UserStatusResponse
// @Router       /api/admin/users-status [get]
func (h *AdminHandler) UsersStatus(c *fiber.Ctx) error {
	out, err := h.users.RosterWithStatus(userFilters(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListUsers godoc
// @Summary      Listar usuarios
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        search      query  string  false  "Búsqueda por nombre o email"
// @Param        department  query  string  false  "Departamento"
// @Success      200  {array}  dto.UserResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.users.List(userFilters(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Departments godoc
// @Summary      Departamentos con usuarios registrados
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/admin/departments [get]
func (h *AdminHandler) Departments(c *fiber.Ctx) error {
	out, err := h.users.Departments()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListDocuments godoc
// @Summary      Listar todos los documentos con su dueño
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Búsqueda por nombre o tipo"
// @Param        type    query  string  false  "Tipo de documento"
// @Param        status  query  string  false  "Estado de revisión"
// @Param        userId  query  string  false  "ID del usuario"
// @Success      200  {array}  dto.DocumentWithUserResponse
// @Router       /api/admin/documents [get]
func (h *AdminHandler) ListDocuments(c *fiber.Ctx) error {
	out, err := h.documents.ListAll(documentFilters(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateUser godoc
// @Summary      Crear usuario (alta por admin)
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/users [post]
func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.users.Register(in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el email ya está registrado"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el identificador externo ya está vinculado a otro usuario"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateUser godoc
// @Summary      Actualizar usuario
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        userId  path  string                 true  "ID del usuario"
// @Param        body    body  dto.UpdateUserRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{userId} [patch]
func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.users.Update(c.Params("userId"), in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el email ya está registrado"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el identificador externo ya está vinculado a otro usuario"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "role debe ser user o admin"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(out)
}

// DeleteUser godoc
// @Summary      Eliminar usuario
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        userId  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{userId} [delete]
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.users.Delete(c.Params("userId")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "usuario eliminado"})
}
