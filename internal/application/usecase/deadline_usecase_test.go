package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/documentflow/documentflow-api/internal/application/compliance"
	"github.com/documentflow/documentflow-api/internal/application/dto"
	"github.com/documentflow/documentflow-api/internal/domain"
	"github.com/documentflow/documentflow-api/internal/domain/entity"
)

func TestDeadlineCreate(t *testing.T) {
	uc := NewDeadlineUseCase(newFakeDeadlineRepo())
	due := time.Now().AddDate(0, 0, 10)

	resp, err := uc.Create(dto.CreateDeadlineRequest{
		DocumentType: "contract",
		Title:        "Contrato firmado",
		DueDate:      due,
		IsGlobal:     true,
		UserID:       "u1", // se descarta al ser global
		CreatedBy:    "admin1",
	})
	require.NoError(t, err)
	assert.True(t, resp.IsGlobal)
	assert.Empty(t, resp.UserID)
	require.NotNil(t, resp.Urgency)
	assert.Equal(t, compliance.UrgencySoon, resp.Urgency.Level)

	// no global sin usuario
	_, err = uc.Create(dto.CreateDeadlineRequest{
		DocumentType: "contract",
		Title:        "Contrato",
		DueDate:      due,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeadlineListForUserConUrgencia(t *testing.T) {
	repo := newFakeDeadlineRepo()
	uc := NewDeadlineUseCase(repo)
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	repo.Create(&entity.Deadline{ID: "vencida", IsGlobal: true, DocumentType: "a", DueDate: now.Add(-time.Hour)})
	repo.Create(&entity.Deadline{ID: "propia", UserID: "u1", DocumentType: "b", DueDate: now.AddDate(0, 0, 2)})
	repo.Create(&entity.Deadline{ID: "ajena", UserID: "u2", DocumentType: "c", DueDate: now.AddDate(0, 0, 2)})

	list, err := uc.ListForUser("u1", now)
	require.NoError(t, err)
	require.Len(t, list, 2) // la de u2 no aplica

	// orden por vencimiento ascendente
	assert.Equal(t, "vencida", list[0].ID)
	assert.Equal(t, compliance.UrgencyOverdue, list[0].Urgency.Level)
	assert.Equal(t, compliance.UrgencyUrgent, list[1].Urgency.Level)
	assert.Equal(t, 2, list[1].Urgency.DaysLeft)
}

func TestDeadlineUpcoming(t *testing.T) {
	repo := newFakeDeadlineRepo()
	uc := NewDeadlineUseCase(repo)
	now := time.Now()

	repo.Create(&entity.Deadline{ID: "pasada", IsGlobal: true, DueDate: now.AddDate(0, 0, -1)})
	repo.Create(&entity.Deadline{ID: "cerca", IsGlobal: true, DueDate: now.AddDate(0, 0, 5)})
	repo.Create(&entity.Deadline{ID: "lejos", IsGlobal: true, DueDate: now.AddDate(0, 0, 45)})

	list, err := uc.Upcoming("u1", now)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "cerca", list[0].ID)
}

func TestDeadlineUpdateGlobal(t *testing.T) {
	repo := newFakeDeadlineRepo()
	uc := NewDeadlineUseCase(repo)

	repo.Create(&entity.Deadline{ID: "dl1", UserID: "u1", DocumentType: "contract", Title: "Contrato", DueDate: time.Now().AddDate(0, 0, 5)})

	global := true
	resp, err := uc.Update("dl1", dto.UpdateDeadlineRequest{IsGlobal: &global})
	require.NoError(t, err)
	assert.True(t, resp.IsGlobal)
	assert.Empty(t, resp.UserID) // global limpia el usuario
}
