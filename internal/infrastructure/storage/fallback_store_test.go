package storage_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/documentflow/documentflow-api/internal/infrastructure/storage"
	"github.com/documentflow/documentflow-api/pkg/logger"
)

// remoteSiempreFalla simula un bucket inalcanzable.
type remoteSiempreFalla struct{}

func (remoteSiempreFalla) Save(context.Context, []byte, string, string, string) (*storage.StoredFile, error) {
	return nil, errors.New("conexión rechazada")
}

func (remoteSiempreFalla) Delete(context.Context, string) error {
	return errors.New("conexión rechazada")
}

func (remoteSiempreFalla) PublicURL(string) string { return "" }

// Con el remoto caído, Save cae al disco local y la clave resultante
// la resuelve después el propio Delete.
func TestFallbackStore_RemotoCaidoUsaLocal(t *testing.T) {
	local, err := storage.NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(t, err)
	store := storage.NewFallbackStore(remoteSiempreFalla{}, local, logger.Nop())

	stored, err := store.Save(context.Background(), []byte("bytes"), "comprobante.jpg", "u9", "image/jpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored.Key, "local:"), "el respaldo debe etiquetar la clave como local")

	// El borrado despacha al backend local por la etiqueta, no toca el remoto.
	assert.NoError(t, store.Delete(context.Background(), stored.Key))
}

// Sin remoto configurado (credenciales ausentes) todo va directo a local.
func TestFallbackStore_SinRemotoConfigurado(t *testing.T) {
	local, err := storage.NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(t, err)
	store := storage.NewFallbackStore(nil, local, logger.Nop())

	stored, err := store.Save(context.Background(), []byte("bytes"), "contrato.pdf", "u2", "application/pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored.Key, "local:"))
	assert.Equal(t, stored.URL, store.PublicURL(stored.Key))

	// Una clave remota huérfana sin backend configurado es un error explícito,
	// nunca un intento de adivinar por la forma de la URL.
	err = store.Delete(context.Background(), "s3:u2/123-abc.pdf")
	assert.Error(t, err)
}
