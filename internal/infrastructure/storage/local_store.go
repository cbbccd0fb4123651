package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

var _ FileStore = (*LocalStore)(nil)

// LocalStore guarda archivos bajo un directorio local, organizado por usuario.
// Es el respaldo cuando el bucket remoto no está disponible y el backend
// por defecto en desarrollo.
type LocalStore struct {
	dir       string // raíz de uploads, ej. ./public/uploads
	urlPrefix string // prefijo público, ej. /uploads
}

// NewLocalStore crea el directorio raíz si no existe.
func NewLocalStore(dir, urlPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &LocalStore{dir: dir, urlPrefix: urlPrefix}, nil
}

// Save escribe los bytes bajo <dir>/<userID>/<timestamp>-<nombre>.
func (s *LocalStore) Save(ctx context.Context, data []byte, originalName, userID, contentType string) (*StoredFile, error) {
	_ = ctx
	userDir := filepath.Join(s.dir, userID)
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de usuario: %w", err)
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(originalName))
	if err := os.WriteFile(filepath.Join(userDir, filename), data, 0o644); err != nil {
		return nil, fmt.Errorf("escribir archivo local: %w", err)
	}

	relPath := userID + "/" + filename
	return &StoredFile{
		Key:      TagKey(BackendLocal, relPath),
		URL:      s.urlPrefix + "/" + relPath,
		Filename: filename,
	}, nil
}

// Delete elimina el archivo físico. Un archivo ya inexistente no es error:
// el borrado repetido debe ser idempotente para el caller.
func (s *LocalStore) Delete(ctx context.Context, key string) error {
	_ = ctx
	backend, relPath, err := SplitKey(key)
	if err != nil {
		return err
	}
	if backend != BackendLocal {
		return fmt.Errorf("clave %q no pertenece al backend local", key)
	}
	if err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(relPath))); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("eliminar archivo local: %w", err)
	}
	return nil
}

// PublicURL devuelve la ruta servida por el servidor de estáticos.
func (s *LocalStore) PublicURL(key string) string {
	_, relPath, err := SplitKey(key)
	if err != nil {
		return ""
	}
	return s.urlPrefix + "/" + relPath
}
