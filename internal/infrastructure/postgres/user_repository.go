package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/documentflow/documentflow-api/internal/domain"
	"github.com/documentflow/documentflow-api/internal/domain/entity"
	"github.com/documentflow/documentflow-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, email, first_name, last_name, COALESCE(phone, ''), department, role, COALESCE(firebase_uid, ''), created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nuevo usuario. Email y firebase_uid duplicados se
// reportan como error de dominio.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, email, first_name, last_name, phone, department, role, firebase_uid, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Email, user.FirstName, user.LastName, nullIfEmpty(user.Phone),
		user.Department, user.Role, nullIfEmpty(user.FirebaseUID),
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if dupErr := mapUserUniqueViolation(err); dupErr != nil {
			return dupErr
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// mapUserUniqueViolation traduce una violación 23505 sobre users al error de
// dominio correcto: solo el constraint de email reporta "email ya registrado";
// un firebase_uid duplicado (u otro constraint) es un duplicado genérico.
func mapUserUniqueViolation(err error) error {
	switch constraint := uniqueViolationConstraint(err); {
	case constraint == "":
		return nil
	case strings.Contains(constraint, "email"):
		return domain.ErrEmailAlreadyExists
	default:
		return domain.ErrDuplicate
	}
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.queryOne(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.queryOne(`SELECT `+userColumns+` FROM users WHERE email = $1 LIMIT 1`, email)
}

// GetByFirebaseUID obtiene un usuario por su UID del proveedor de identidad.
func (r *UserRepo) GetByFirebaseUID(firebaseUID string) (*entity.User, error) {
	return r.queryOne(`SELECT `+userColumns+` FROM users WHERE firebase_uid = $1 LIMIT 1`, firebaseUID)
}

func (r *UserRepo) queryOne(query string, args ...any) (*entity.User, error) {
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Phone,
		&u.Department, &u.Role, &u.FirebaseUID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Update sobreescribe la fila completa del usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users
		SET email = $2, first_name = $3, last_name = $4, phone = $5,
		    department = $6, role = $7, firebase_uid = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Email, user.FirstName, user.LastName, nullIfEmpty(user.Phone),
		user.Department, user.Role, nullIfEmpty(user.FirebaseUID), user.UpdatedAt,
	)
	if err != nil {
		if dupErr := mapUserUniqueViolation(err); dupErr != nil {
			return dupErr
		}
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve usuarios filtrados por búsqueda libre y departamento,
// ordenados por nombre ascendente.
func (r *UserRepo) List(filters repository.UserFilters) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`
	var conds []string
	var args []any

	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d)", n, n, n))
	}
	if filters.Department != "" && filters.Department != "all" {
		args = append(args, filters.Department)
		conds = append(conds, fmt.Sprintf("department = $%d", len(args)))
	}
	query += whereClause(conds) + ` ORDER BY first_name ASC`

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Phone,
			&u.Department, &u.Role, &u.FirebaseUID, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Departments devuelve la lista de departamentos distintos.
func (r *UserRepo) Departments() ([]string, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT DISTINCT department FROM users ORDER BY department ASC`)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	var departments []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}
