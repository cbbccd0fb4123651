package entity

import "time"

// Roles válidos para User.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User representa un empleado registrado en el portal. La identidad (login)
// vive en el proveedor externo; FirebaseUID enlaza ambos registros.
type User struct {
	ID          string
	Email       string // único
	FirstName   string
	LastName    string
	Phone       string
	Department  string
	Role        string // user, admin
	FirebaseUID string // único, vacío si aún no se vincula
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FullName devuelve el nombre completo para correos y listados.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
