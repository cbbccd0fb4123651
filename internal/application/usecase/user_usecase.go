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

// UserUseCase casos de uso de usuarios: registro, perfil, dashboard personal
// y roster de administración.
type UserUseCase struct {
	users     repository.UserRepository
	documents repository.DocumentRepository
	deadlines repository.DeadlineRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository, documents repository.DocumentRepository, deadlines repository.DeadlineRepository) *UserUseCase {
	return &UserUseCase{users: users, documents: documents, deadlines: deadlines}
}

// Register crea un usuario nuevo. El email es único: el pre-chequeo cubre el
// caso común y la restricción de la base el caso concurrente.
func (uc *UserUseCase) Register(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	existing, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	now := time.Now()
	user := &entity.User{
		ID:          uuid.New().String(),
		Email:       in.Email,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Phone:       in.Phone,
		Department:  in.Department,
		Role:        in.Role,
		FirebaseUID: in.FirebaseUID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// GetByFirebaseUID resuelve el usuario interno a partir de la identidad externa.
func (uc *UserUseCase) GetByFirebaseUID(firebaseUID string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByFirebaseUID(firebaseUID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// Update aplica una actualización parcial sobre los campos presentes.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Department != nil {
		user.Department = *in.Department
	}
	if in.Role != nil {
		if *in.Role != entity.RoleUser && *in.Role != entity.RoleAdmin {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	user.UpdatedAt = time.Now()

	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario; sus documentos y notificaciones caen en cascada.
func (uc *UserUseCase) Delete(id string) error {
	return uc.users.Delete(id)
}

// List lista usuarios con filtros de búsqueda y departamento.
func (uc *UserUseCase) List(filters repository.UserFilters) ([]*dto.UserResponse, error) {
	users, err := uc.users.List(filters)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Departments devuelve los departamentos distintos con usuarios registrados.
func (uc *UserUseCase) Departments() ([]string, error) {
	return uc.users.Departments()
}

// Stats deriva el resumen del dashboard personal del usuario.
func (uc *UserUseCase) Stats(userID string, now time.Time) (*dto.UserStatsResponse, error) {
	docs, err := uc.documents.ListByUser(userID, repository.DocumentFilters{})
	if err != nil {
		return nil, err
	}
	deadlines, err := uc.deadlines.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	s := compliance.ComputeUserStats(docs, deadlines, now)
	return &dto.UserStatsResponse{
		Uploaded:   s.Uploaded,
		Pending:    s.Pending,
		Upcoming:   s.Upcoming,
		Compliance: s.Compliance,
	}, nil
}

// Activity devuelve las últimas 5 subidas del usuario como feed de actividad.
func (uc *UserUseCase) Activity(userID string) ([]dto.ActivityItem, error) {
	docs, err := uc.documents.ListByUser(userID, repository.DocumentFilters{Limit: 5})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ActivityItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, dto.ActivityItem{
			Type:      "upload",
			Title:     d.OriginalName + " subido",
			CreatedAt: d.UploadedAt,
		})
	}
	return items, nil
}

// RosterWithStatus lista usuarios con su estado de entrega derivado, para el
// roster de administración.
func (uc *UserUseCase) RosterWithStatus(filters repository.UserFilters) ([]*dto.UserStatusResponse, error) {
	users, err := uc.users.List(filters)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.UserStatusResponse, 0, len(users))
	for _, u := range users {
		docs, err := uc.documents.ListByUser(u.ID, repository.DocumentFilters{})
		if err != nil {
			return nil, err
		}
		deadlines, err := uc.deadlines.ListForUser(u.ID)
		if err != nil {
			return nil, err
		}
		rs := compliance.UserStatus(docs, deadlines)
		out = append(out, &dto.UserStatusResponse{
			UserResponse:      *toUserResponse(u),
			DocumentsUploaded: rs.DocumentsUploaded,
			DocumentsRequired: rs.DocumentsRequired,
			DocumentsCount:    rs.DocumentsCount,
			Status:            rs.Status,
			LastActivity:      rs.LastActivity,
		})
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Phone:       u.Phone,
		Department:  u.Department,
		Role:        u.Role,
		FirebaseUID: u.FirebaseUID,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
