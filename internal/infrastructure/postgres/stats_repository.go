package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/documentflow/documentflow-api/internal/domain/entity"
	"github.com/documentflow/documentflow-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para los dashboards de administración.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// GetAdminCounters devuelve los contadores del dashboard con rangos de fecha
// reales: usuarios nuevos desde monthStart, documentos nuevos desde weekStart
// y fechas límite ya vencidas a la hora now.
func (r *StatsRepo) GetAdminCounters(ctx context.Context, monthStart, weekStart, now time.Time) (*repository.AdminCounters, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM users)                                            AS total_users,
	    (SELECT COUNT(*) FROM users WHERE created_at >= $1)                     AS new_users_this_month,
	    (SELECT COUNT(*) FROM documents)                                        AS total_documents,
	    (SELECT COUNT(*) FROM documents WHERE uploaded_at >= $2)                AS new_documents_this_week,
	    (SELECT COUNT(*) FROM documents WHERE status = $4)                      AS processed_documents,
	    (SELECT COUNT(*) FROM deadlines WHERE due_date < $3)                    AS overdue_deadlines`

	var c repository.AdminCounters
	err := r.pool.QueryRow(ctx, query, monthStart, weekStart, now, entity.DocumentStatusProcessed).Scan(
		&c.TotalUsers, &c.NewUsersThisMonth, &c.TotalDocuments,
		&c.NewDocumentsThisWeek, &c.ProcessedDocuments, &c.OverdueDeadlines,
	)
	if err != nil {
		return nil, fmt.Errorf("stats.GetAdminCounters: %w", err)
	}
	return &c, nil
}

// GetDocumentTypeCounts agrupa documentos por tipo, de mayor a menor.
func (r *StatsRepo) GetDocumentTypeCounts(ctx context.Context) ([]repository.DocumentTypeCount, error) {
	const query = `
	SELECT document_type, COUNT(*) AS total
	FROM documents
	GROUP BY document_type
	ORDER BY total DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stats.GetDocumentTypeCounts: %w", err)
	}
	defer rows.Close()

	var counts []repository.DocumentTypeCount
	for rows.Next() {
		var c repository.DocumentTypeCount
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			return nil, fmt.Errorf("stats.GetDocumentTypeCounts scan: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
