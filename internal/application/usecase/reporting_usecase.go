package usecase

import (
	"context"
	"time"

	"github.com/documentflow/documentflow-api/internal/application/compliance"
	"github.com/documentflow/documentflow-api/internal/application/dto"
	"github.com/documentflow/documentflow-api/internal/domain/repository"
)

// ReportingUseCase agregados de solo lectura para el dashboard de
// administración. Todo se deriva por petición; no hay cache.
type ReportingUseCase struct {
	stats     repository.StatsRepository
	users     repository.UserRepository
	documents repository.DocumentRepository
}

// NewReportingUseCase construye el caso de uso.
func NewReportingUseCase(stats repository.StatsRepository, users repository.UserRepository, documents repository.DocumentRepository) *ReportingUseCase {
	return &ReportingUseCase{stats: stats, users: users, documents: documents}
}

// AdminStats devuelve los contadores del dashboard. "Nuevos este mes" y
// "nuevos esta semana" usan rangos de fecha reales: inicio del mes calendario
// y últimos 7 días respectivamente.
func (uc *ReportingUseCase) AdminStats(ctx context.Context, now time.Time) (*dto.AdminStatsResponse, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	weekStart := now.AddDate(0, 0, -7)

	counters, err := uc.stats.GetAdminCounters(ctx, monthStart, weekStart, now)
	if err != nil {
		return nil, err
	}

	return &dto.AdminStatsResponse{
		TotalUsers:           counters.TotalUsers,
		NewUsersThisMonth:    counters.NewUsersThisMonth,
		TotalDocuments:       counters.TotalDocuments,
		NewDocumentsThisWeek: counters.NewDocumentsThisWeek,
		Compliance:           compliance.Percentage(counters.ProcessedDocuments, counters.TotalDocuments),
		Overdue:              counters.OverdueDeadlines,
	}, nil
}

// ComplianceByDepartment agrega el porcentaje de cumplimiento por
// departamento sobre todos los usuarios y documentos.
func (uc *ReportingUseCase) ComplianceByDepartment(ctx context.Context) ([]dto.DepartmentComplianceResponse, error) {
	users, err := uc.users.List(repository.UserFilters{})
	if err != nil {
		return nil, err
	}
	docs, err := uc.documents.ListAll(repository.DocumentFilters{})
	if err != nil {
		return nil, err
	}

	depts := compliance.ByDepartment(users, docs)
	out := make([]dto.DepartmentComplianceResponse, 0, len(depts))
	for _, d := range depts {
		out = append(out, dto.DepartmentComplianceResponse{
			Name:       d.Name,
			Percentage: d.Percentage,
		})
	}
	return out, nil
}

// DocumentTypeStats devuelve el conteo de documentos por tipo, mayor primero.
func (uc *ReportingUseCase) DocumentTypeStats(ctx context.Context) ([]dto.DocumentTypeStatResponse, error) {
	counts, err := uc.stats.GetDocumentTypeCounts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentTypeStatResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.DocumentTypeStatResponse{Name: c.Name, Count: c.Count})
	}
	return out, nil
}
