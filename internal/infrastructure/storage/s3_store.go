package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var _ FileStore = (*S3Store)(nil)

// S3Config credenciales y destino del bucket. Endpoint permite apuntar a
// proveedores compatibles con S3 (Supabase Storage, MinIO).
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // vacío = AWS estándar
	AccessKey string
	SecretKey string
}

// Configured indica si hay credenciales suficientes para construir el cliente.
func (c S3Config) Configured() bool {
	return c.Bucket != "" && c.AccessKey != "" && c.SecretKey != ""
}

// S3Store backend primario de archivos sobre un bucket S3.
type S3Store struct {
	client *s3.Client
	cfg    S3Config
}

// NewS3Store construye el cliente S3 con credenciales estáticas.
func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("s3: configuración incompleta")
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("s3: cargar configuración AWS: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Store{client: client, cfg: cfg}, nil
}

// Save sube los bytes con clave <userID>/<timestamp>-<uuid><ext>.
func (s *S3Store) Save(ctx context.Context, data []byte, originalName, userID, contentType string) (*StoredFile, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	ext := filepath.Ext(originalName)
	filename := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)
	objectKey := userID + "/" + filename

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("s3: subir objeto: %w", err)
	}

	key := TagKey(BackendS3, objectKey)
	return &StoredFile{
		Key:      key,
		URL:      s.PublicURL(key),
		Filename: filename,
	}, nil
}

// Delete elimina el objeto del bucket.
func (s *S3Store) Delete(ctx context.Context, key string) error {
	backend, objectKey, err := SplitKey(key)
	if err != nil {
		return err
	}
	if backend != BackendS3 {
		return fmt.Errorf("clave %q no pertenece al backend s3", key)
	}
	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("s3: eliminar objeto: %w", err)
	}
	return nil
}

// PublicURL construye la URL pública del objeto. Con endpoint propio usa
// path-style; sin endpoint, el host virtual estándar de AWS.
func (s *S3Store) PublicURL(key string) string {
	_, objectKey, err := SplitKey(key)
	if err != nil {
		return ""
	}
	if s.cfg.Endpoint != "" {
		return strings.TrimSuffix(s.cfg.Endpoint, "/") + "/" + s.cfg.Bucket + "/" + objectKey
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, objectKey)
}
