package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/documentflow/documentflow-api/internal/application/compliance"
	"github.com/documentflow/documentflow-api/internal/application/dto"
	"github.com/documentflow/documentflow-api/internal/domain"
	"github.com/documentflow/documentflow-api/internal/domain/entity"
	"github.com/documentflow/documentflow-api/internal/domain/repository"
)

// DeadlineUseCase casos de uso de fechas límite. La urgencia se deriva por
// petición respecto a "ahora"; nunca se persiste.
type DeadlineUseCase struct {
	deadlines repository.DeadlineRepository
}

// NewDeadlineUseCase construye el caso de uso.
func NewDeadlineUseCase(deadlines repository.DeadlineRepository) *DeadlineUseCase {
	return &DeadlineUseCase{deadlines: deadlines}
}

// Create crea una fecha límite nueva. Una fecha global no guarda usuario.
func (uc *DeadlineUseCase) Create(in dto.CreateDeadlineRequest) (*dto.DeadlineResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	userID := in.UserID
	if in.IsGlobal {
		userID = ""
	}
	deadline := &entity.Deadline{
		ID:           uuid.New().String(),
		UserID:       userID,
		DocumentType: in.DocumentType,
		Title:        in.Title,
		Description:  in.Description,
		DueDate:      in.DueDate,
		IsGlobal:     in.IsGlobal,
		CreatedBy:    in.CreatedBy,
		CreatedAt:    time.Now(),
	}
	if err := uc.deadlines.Create(deadline); err != nil {
		return nil, err
	}
	return toDeadlineResponse(deadline, time.Now()), nil
}

// GetByID obtiene una fecha límite por ID.
func (uc *DeadlineUseCase) GetByID(id string) (*dto.DeadlineResponse, error) {
	deadline, err := uc.deadlines.GetByID(id)
	if err != nil {
		return nil, err
	}
	if deadline == nil {
		return nil, nil
	}
	return toDeadlineResponse(deadline, time.Now()), nil
}

// ListForUser lista las fechas límite del usuario (propias + globales) con su
// urgencia, ordenadas por vencimiento ascendente.
func (uc *DeadlineUseCase) ListForUser(userID string, now time.Time) ([]*dto.DeadlineResponse, error) {
	deadlines, err := uc.deadlines.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DeadlineResponse, 0, len(deadlines))
	for _, d := range deadlines {
		out = append(out, toDeadlineResponse(d, now))
	}
	return out, nil
}

// Upcoming devuelve hasta 5 fechas límite del usuario que vencen en los
// próximos 30 días.
func (uc *DeadlineUseCase) Upcoming(userID string, now time.Time) ([]*dto.DeadlineResponse, error) {
	deadlines, err := uc.deadlines.ListUpcoming(userID, now, now.AddDate(0, 0, 30), 5)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DeadlineResponse, 0, len(deadlines))
	for _, d := range deadlines {
		out = append(out, toDeadlineResponse(d, now))
	}
	return out, nil
}

// Update aplica una actualización parcial sobre los campos presentes.
func (uc *DeadlineUseCase) Update(id string, in dto.UpdateDeadlineRequest) (*dto.DeadlineResponse, error) {
	deadline, err := uc.deadlines.GetByID(id)
	if err != nil {
		return nil, err
	}
	if deadline == nil {
		return nil, nil
	}

	if in.DocumentType != nil {
		deadline.DocumentType = *in.DocumentType
	}
	if in.Title != nil {
		deadline.Title = *in.Title
	}
	if in.Description != nil {
		deadline.Description = *in.Description
	}
	if in.DueDate != nil {
		deadline.DueDate = *in.DueDate
	}
	if in.IsGlobal != nil {
		deadline.IsGlobal = *in.IsGlobal
	}
	if in.UserID != nil {
		deadline.UserID = *in.UserID
	}
	if deadline.IsGlobal {
		deadline.UserID = ""
	} else if deadline.UserID == "" {
		return nil, domain.ErrInvalidInput
	}

	if err := uc.deadlines.Update(deadline); err != nil {
		return nil, err
	}
	return toDeadlineResponse(deadline, time.Now()), nil
}

// Delete elimina una fecha límite; sus recordatorios caen en cascada.
func (uc *DeadlineUseCase) Delete(id string) error {
	return uc.deadlines.Delete(id)
}

func toDeadlineResponse(d *entity.Deadline, now time.Time) *dto.DeadlineResponse {
	return &dto.DeadlineResponse{
		ID:           d.ID,
		UserID:       d.UserID,
		DocumentType: d.DocumentType,
		Title:        d.Title,
		Description:  d.Description,
		DueDate:      d.DueDate,
		IsGlobal:     d.IsGlobal,
		CreatedBy:    d.CreatedBy,
		CreatedAt:    d.CreatedAt,
		Urgency: &dto.UrgencyResponse{
			Level:    compliance.Urgency(d.DueDate, now),
			DaysLeft: compliance.DaysLeft(d.DueDate, now),
		},
	}
}
