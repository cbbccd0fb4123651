package repository

import "github.com/documentflow/documentflow-api/internal/domain/entity"

// UserFilters criterios de listado de usuarios (búsqueda libre y departamento exacto).
type UserFilters struct {
	Search     string // substring sobre first_name, last_name, email
	Department string // match exacto; vacío o "all" = todos
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByFirebaseUID(firebaseUID string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
	List(filters UserFilters) ([]*entity.User, error)
	Departments() ([]string, error)
}
