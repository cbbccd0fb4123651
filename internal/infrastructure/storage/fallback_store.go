package storage

import (
	"context"
	"fmt"

	"github.com/documentflow/documentflow-api/pkg/logger"
)

var _ FileStore = (*FallbackStore)(nil)

// FallbackStore intenta el backend remoto y, ante cualquier fallo (credenciales
// ausentes, error de red), cae al disco local. No hay reintentos: el respaldo
// existe para operación local/desarrollo, no como recuperación garantizada.
// El borrado despacha por la etiqueta de la clave, de modo que un archivo
// guardado en local se borra en local aunque el remoto ya esté disponible.
type FallbackStore struct {
	remote FileStore // nil cuando no hay credenciales
	local  *LocalStore
	log    *logger.Logger
}

// NewFallbackStore arma la cadena remoto→local. remote puede ser nil.
func NewFallbackStore(remote FileStore, local *LocalStore, log *logger.Logger) *FallbackStore {
	return &FallbackStore{remote: remote, local: local, log: log}
}

// Save sube al remoto; si falla, escribe en local y lo registra.
func (s *FallbackStore) Save(ctx context.Context, data []byte, originalName, userID, contentType string) (*StoredFile, error) {
	if s.remote != nil {
		stored, err := s.remote.Save(ctx, data, originalName, userID, contentType)
		if err == nil {
			return stored, nil
		}
		s.log.Warn().Err(err).Str("file", originalName).
			Msg("almacenamiento remoto falló, usando respaldo local")
	}
	return s.local.Save(ctx, data, originalName, userID, contentType)
}

// Delete despacha al backend indicado por la etiqueta de la clave.
func (s *FallbackStore) Delete(ctx context.Context, key string) error {
	backend, _, err := SplitKey(key)
	if err != nil {
		return err
	}
	switch backend {
	case BackendS3:
		if s.remote == nil {
			return fmt.Errorf("clave remota %q sin backend s3 configurado", key)
		}
		return s.remote.Delete(ctx, key)
	case BackendLocal:
		return s.local.Delete(ctx, key)
	}
	return fmt.Errorf("backend desconocido en clave %q", key)
}

// PublicURL despacha al backend indicado por la etiqueta de la clave.
func (s *FallbackStore) PublicURL(key string) string {
	backend, _, err := SplitKey(key)
	if err != nil {
		return ""
	}
	if backend == BackendS3 && s.remote != nil {
		return s.remote.PublicURL(key)
	}
	return s.local.PublicURL(key)
}
