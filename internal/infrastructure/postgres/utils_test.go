package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/documentflow/documentflow-api/internal/domain"
)

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

// El constraint de email reporta el error de dominio específico; cualquier
// otro constraint único (firebase_uid) es un duplicado genérico, nunca
// "email ya registrado".
func TestMapUserUniqueViolation(t *testing.T) {
	assert.ErrorIs(t, mapUserUniqueViolation(uniqueViolation("users_email_key")), domain.ErrEmailAlreadyExists)
	assert.ErrorIs(t, mapUserUniqueViolation(uniqueViolation("users_firebase_uid_key")), domain.ErrDuplicate)

	// errores que no son 23505 no se traducen
	assert.Nil(t, mapUserUniqueViolation(errors.New("connection refused")))
	assert.Nil(t, mapUserUniqueViolation(&pgconn.PgError{Code: "23503", ConstraintName: "documents_user_id_fkey"}))

	// el error envuelto también se reconoce
	wrapped := fmt.Errorf("insert user: %w", uniqueViolation("users_email_key"))
	assert.ErrorIs(t, mapUserUniqueViolation(wrapped), domain.ErrEmailAlreadyExists)
}

func TestWhereClause(t *testing.T) {
	assert.Equal(t, "", whereClause(nil))
	assert.Equal(t, " WHERE status = $1 AND user_id = $2", whereClause([]string{"status = $1", "user_id = $2"}))
}
