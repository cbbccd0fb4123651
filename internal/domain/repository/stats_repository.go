package repository

import (
	"context"
	"time"
)

// AdminCounters agregados para el dashboard de administración.
// Los conteos "nuevos" usan rangos de fecha reales (mes en curso / últimos 7 días),
// no porcentajes fijos del total.
type AdminCounters struct {
	TotalUsers           int
	NewUsersThisMonth    int
	TotalDocuments       int
	NewDocumentsThisWeek int
	ProcessedDocuments   int
	OverdueDeadlines     int
}

// DocumentTypeCount conteo de documentos por tipo.
type DocumentTypeCount struct {
	Name  string
	Count int
}

// StatsRepository consultas de solo lectura para los dashboards.
type StatsRepository interface {
	GetAdminCounters(ctx context.Context, monthStart, weekStart, now time.Time) (*AdminCounters, error)
	GetDocumentTypeCounts(ctx context.Context) ([]DocumentTypeCount, error)
}
