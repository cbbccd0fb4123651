package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/documentflow/documentflow-api/internal/application/dto"
	"github.com/documentflow/documentflow-api/internal/application/usecase"
	"github.com/documentflow/documentflow-api/internal/domain"
)

// ReminderHandler maneja las peticiones HTTP para Reminder (solo admin).
type ReminderHandler struct {
	uc *usecase.ReminderUseCase
}

// NewReminderHandler construye el handler.
func NewReminderHandler(uc *usecase.ReminderUseCase) *ReminderHandler {
	return &ReminderHandler{uc: uc}
}

// List godoc
// @Summary      Listar recordatorios
// @Tags         reminders
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReminderResponse
// @Router       /api/admin/reminders [get]
func (h *ReminderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear recordatorio
// @Tags         reminders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReminderRequest  true  "Datos del recordatorio"
// @Success      201   {object}  dto.ReminderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/reminders [post]
func (h *ReminderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReminderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fecha límite no encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar recordatorio
// @Tags         reminders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        reminderId  path  string                     true  "ID del recordatorio"
// @Param        body        body  dto.UpdateReminderRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.ReminderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/reminders/{reminderId} [patch]
func (h *ReminderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateReminderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("reminderId"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "reminderType debe ser email, sms o push"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recordatorio no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar recordatorio
// @Tags         reminders
// @Security     Bearer
// @Produce      json
// @Param        reminderId  path  string  true  "ID del recordatorio"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/reminders/{reminderId} [delete]
func (h *ReminderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("reminderId")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recordatorio no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "recordatorio eliminado"})
}

// Send godoc
// @Summary      Enviar recordatorio ahora
// @Tags         reminders
// @Security     Bearer
// @Produce      json
// @Param        reminderId  path  string  true  "ID del recordatorio"
// @Success      200  {object}  dto.ReminderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/reminders/{reminderId}/send [post]
func (h *ReminderHandler) Send(c *fiber.Ctx) error {
	out, err := h.uc.Send(c.Params("reminderId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recordatorio o fecha límite no encontrados"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
