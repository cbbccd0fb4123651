package dto

// AdminStatsResponse contadores del dashboard de administración.
// Los campos "nuevos" salen de consultas con rango de fecha real.
type AdminStatsResponse struct {
	TotalUsers           int `json:"totalUsers"`
	NewUsersThisMonth    int `json:"newUsersThisMonth"`
	TotalDocuments       int `json:"totalDocuments"`
	NewDocumentsThisWeek int `json:"newDocumentsThisWeek"`
	Compliance           int `json:"compliance"`
	Overdue              int `json:"overdue"`
}

// DepartmentComplianceResponse porcentaje de cumplimiento de un departamento.
type DepartmentComplianceResponse struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
}

// DocumentTypeStatResponse conteo de documentos por tipo.
type DocumentTypeStatResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
