package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/documentflow/documentflow-api/internal/application/dto"
	"github.com/documentflow/documentflow-api/internal/application/usecase"
	"github.com/documentflow/documentflow-api/internal/domain"
)

// DeadlineHandler maneja las peticiones HTTP para Deadline.
type DeadlineHandler struct {
	uc *usecase.DeadlineUseCase
}

// NewDeadlineHandler construye el handler.
func NewDeadlineHandler(uc *usecase.DeadlineUseCase) *DeadlineHandler {
	return &DeadlineHandler{uc: uc}
}

// Create godoc
// @Summary      Crear fecha límite
// @Tags         deadlines
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDeadlineRequest  true  "Datos de la fecha límite"
// @Success      201   {object}  dto.DeadlineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/deadlines [post]
func (h *DeadlineHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDeadlineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListForUser godoc
// @Summary      Fechas límite del usuario (propias + globales)
// @Tags         deadlines
// @Produce      json
// @Param        userId  path  string  true  "ID del usuario"
// @Success      200  {array}  dto.DeadlineResponse
// @Router       /api/deadlines/{userId} [get]
func (h *DeadlineHandler) ListForUser(c *fiber.Ctx) error {
	out, err := h.uc.ListForUser(c.Params("userId"), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Upcoming godoc
// @Summary      Fechas límite próximas (30 días, máx. 5)
// @Tags         deadlines
// @Produce      json
// @Param        userId  path  string  true  "ID del usuario"
// @Success      200  {array}  dto.DeadlineResponse
// @Router       /api/deadlines/upcoming/{userId} [get]
func (h *DeadlineHandler) Upcoming(c *fiber.Ctx) error {
	out, err := h.uc.Upcoming(c.Params("userId"), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar fecha límite
// @Tags         deadlines
// @Accept       json
// @Produce      json
// @Param        deadlineId  path  string                     true  "ID de la fecha límite"
// @Param        body        body  dto.UpdateDeadlineRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.DeadlineResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deadlines/{deadlineId} [patch]
func (h *DeadlineHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDeadlineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("deadlineId"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "una fecha límite no global requiere userId"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fecha límite no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar fecha límite
// @Tags         deadlines
// @Produce      json
// @Param        deadlineId  path  string  true  "ID de la fecha límite"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deadlines/{deadlineId} [delete]
func (h *DeadlineHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("deadlineId")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fecha límite no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "fecha límite eliminada"})
}
