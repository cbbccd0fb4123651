// Package storage implementa el adaptador de archivos del portal: un backend
// remoto S3 y un respaldo en disco local. Las claves devueltas van etiquetadas
// con su backend ("s3:" o "local:") para que el borrado despache por etiqueta
// y no adivinando por la forma de la URL.
package storage

import (
	"context"
	"fmt"
	"strings"
)

// Etiquetas de backend en las claves de almacenamiento.
const (
	BackendS3    = "s3"
	BackendLocal = "local"
)

// StoredFile resultado de guardar un archivo.
type StoredFile struct {
	Key      string // clave etiquetada, ej. "local:u1/1714-id.pdf"
	URL      string // URL servible para el cliente
	Filename string // nombre físico del archivo (sin el prefijo de usuario)
}

// FileStore define el puerto de almacenamiento de blobs.
type FileStore interface {
	Save(ctx context.Context, data []byte, originalName, userID, contentType string) (*StoredFile, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

// TagKey construye una clave etiquetada backend:ruta.
func TagKey(backend, path string) string {
	return backend + ":" + path
}

// SplitKey separa una clave etiquetada en backend y ruta.
func SplitKey(key string) (backend, path string, err error) {
	backend, path, ok := strings.Cut(key, ":")
	if !ok || (backend != BackendS3 && backend != BackendLocal) {
		return "", "", fmt.Errorf("clave de almacenamiento sin etiqueta de backend: %q", key)
	}
	return backend, path, nil
}
