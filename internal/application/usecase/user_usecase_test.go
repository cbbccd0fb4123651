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
	"github.com/documentflow/documentflow-api/internal/domain/repository"
)

func newUserUC() (*UserUseCase, *fakeUserRepo, *fakeDocumentRepo, *fakeDeadlineRepo) {
	users := newFakeUserRepo()
	docs := newFakeDocumentRepo()
	deadlines := newFakeDeadlineRepo()
	return NewUserUseCase(users, docs, deadlines), users, docs, deadlines
}

func TestUserRegister(t *testing.T) {
	uc, _, _, _ := newUserUC()

	resp, err := uc.Register(dto.CreateUserRequest{
		Email:      "ana@empresa.com",
		FirstName:  "Ana",
		LastName:   "García",
		Department: "Finanzas",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, entity.RoleUser, resp.Role)

	// email duplicado
	_, err = uc.Register(dto.CreateUserRequest{
		Email:      "ana@empresa.com",
		FirstName:  "Otra",
		LastName:   "Persona",
		Department: "Ventas",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	// campos requeridos
	_, err = uc.Register(dto.CreateUserRequest{Email: "sin@nombre.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUpdateParcial(t *testing.T) {
	uc, _, _, _ := newUserUC()

	created, err := uc.Register(dto.CreateUserRequest{
		Email:      "ana@empresa.com",
		FirstName:  "Ana",
		LastName:   "García",
		Phone:      "555-0001",
		Department: "Finanzas",
	})
	require.NoError(t, err)

	dept := "Operaciones"
	updated, err := uc.Update(created.ID, dto.UpdateUserRequest{Department: &dept})
	require.NoError(t, err)
	assert.Equal(t, "Operaciones", updated.Department)
	// los campos ausentes no cambian
	assert.Equal(t, "Ana", updated.FirstName)
	assert.Equal(t, "555-0001", updated.Phone)

	badRole := "superadmin"
	_, err = uc.Update(created.ID, dto.UpdateUserRequest{Role: &badRole})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	missing, err := uc.Update("no-existe", dto.UpdateUserRequest{Department: &dept})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserStats(t *testing.T) {
	uc, users, docs, deadlines := newUserUC()
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	users.Create(&entity.User{ID: "u1", Email: "u1@empresa.com", Department: "Finanzas"})
	docs.Create(&entity.Document{ID: "d1", UserID: "u1", Status: entity.DocumentStatusProcessed, UploadedAt: now})
	docs.Create(&entity.Document{ID: "d2", UserID: "u1", Status: entity.DocumentStatusPending, UploadedAt: now})
	deadlines.Create(&entity.Deadline{ID: "dl1", IsGlobal: true, DocumentType: "contract", DueDate: now.AddDate(0, 0, 3)})
	deadlines.Create(&entity.Deadline{ID: "dl2", IsGlobal: true, DocumentType: "identification", DueDate: now.AddDate(0, 0, 20)})

	stats, err := uc.Stats("u1", now)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Uploaded)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Upcoming) // solo la de +3 días cae en la semana
	assert.Equal(t, 50, stats.Compliance)
}

func TestUserActivity(t *testing.T) {
	uc, _, docs, _ := newUserUC()
	now := time.Now()

	for i := 0; i < 7; i++ {
		docs.Create(&entity.Document{
			ID:           string(rune('a' + i)),
			UserID:       "u1",
			OriginalName: "doc.pdf",
			UploadedAt:   now.Add(time.Duration(i) * time.Minute),
		})
	}

	items, err := uc.Activity("u1")
	require.NoError(t, err)
	assert.Len(t, items, 5)
	assert.Equal(t, "upload", items[0].Type)
	assert.Equal(t, "doc.pdf subido", items[0].Title)
}

func TestUserRosterWithStatus(t *testing.T) {
	uc, users, docs, deadlines := newUserUC()
	now := time.Now()

	users.Create(&entity.User{ID: "u1", Email: "completo@empresa.com", Department: "Finanzas"})
	users.Create(&entity.User{ID: "u2", Email: "vacio@empresa.com", Department: "Finanzas"})

	deadlines.Create(&entity.Deadline{ID: "dl1", IsGlobal: true, DocumentType: "contract", DueDate: now})
	docs.Create(&entity.Document{ID: "d1", UserID: "u1", DocumentType: "contract", Status: entity.DocumentStatusProcessed, UploadedAt: now})

	roster, err := uc.RosterWithStatus(repository.UserFilters{})
	require.NoError(t, err)
	require.Len(t, roster, 2)

	byEmail := map[string]string{}
	for _, r := range roster {
		byEmail[r.Email] = r.Status
	}
	assert.Equal(t, compliance.StatusComplete, byEmail["completo@empresa.com"])
	assert.Equal(t, compliance.StatusPending, byEmail["vacio@empresa.com"])
}
