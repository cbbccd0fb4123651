package compliance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/documentflow/documentflow-api/internal/domain/entity"
)

// Estados de un usuario en el roster de administración.
const (
	StatusComplete   = "complete"
	StatusIncomplete = "incomplete"
	StatusPending    = "pending"
)

// Percentage devuelve round(100 × processed / total) como entero.
// Con total cero devuelve 0 (nunca NaN ni negativo). El cálculo usa
// decimal para que el redondeo en .5 sea estable.
func Percentage(processed, total int) int {
	if total <= 0 {
		return 0
	}
	pct := decimal.NewFromInt(int64(processed)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(0)
	return int(pct.IntPart())
}

// countByStatus cuenta documentos con el estado dado.
func countByStatus(docs []*entity.Document, status string) int {
	n := 0
	for _, d := range docs {
		if d.Status == status {
			n++
		}
	}
	return n
}

// UserStats resumen del dashboard personal de un usuario.
type UserStats struct {
	Uploaded   int // documentos procesados
	Pending    int // documentos pendientes de revisión
	Upcoming   int // fechas límite en los próximos 7 días
	Compliance int // porcentaje 0–100
}

// ComputeUserStats deriva el resumen a partir de los documentos del usuario
// y sus fechas límite aplicables (propias + globales).
func ComputeUserStats(docs []*entity.Document, deadlines []*entity.Deadline, now time.Time) UserStats {
	processed := countByStatus(docs, entity.DocumentStatusProcessed)
	weekAhead := now.Add(7 * day)

	upcoming := 0
	for _, d := range deadlines {
		if !d.DueDate.Before(now) && !d.DueDate.After(weekAhead) {
			upcoming++
		}
	}

	return UserStats{
		Uploaded:   processed,
		Pending:    countByStatus(docs, entity.DocumentStatusPending),
		Upcoming:   upcoming,
		Compliance: Percentage(processed, len(docs)),
	}
}

// DepartmentCompliance porcentaje agregado de un departamento.
type DepartmentCompliance struct {
	Name       string
	Percentage int
}

// ByDepartment agrega el cumplimiento por departamento: suma documentos
// procesados y totales de todos los usuarios del departamento. Departamentos
// sin documentos reportan 0. El resultado va ordenado por nombre.
func ByDepartment(users []*entity.User, docs []*entity.Document) []DepartmentCompliance {
	deptByUser := make(map[string]string, len(users))
	for _, u := range users {
		deptByUser[u.ID] = u.Department
	}

	type tally struct{ processed, total int }
	tallies := make(map[string]*tally)
	for _, u := range users {
		if _, ok := tallies[u.Department]; !ok {
			tallies[u.Department] = &tally{}
		}
	}
	for _, d := range docs {
		dept, ok := deptByUser[d.UserID]
		if !ok {
			continue
		}
		t := tallies[dept]
		t.total++
		if d.Status == entity.DocumentStatusProcessed {
			t.processed++
		}
	}

	names := make([]string, 0, len(tallies))
	for name := range tallies {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]DepartmentCompliance, 0, len(names))
	for _, name := range names {
		t := tallies[name]
		result = append(result, DepartmentCompliance{
			Name:       name,
			Percentage: Percentage(t.processed, t.total),
		})
	}
	return result
}

// RosterStatus estado de entrega de un usuario en el roster de administración.
// Required se deriva de los tipos de documento con fecha límite aplicable,
// no de una cantidad fija.
type RosterStatus struct {
	DocumentsUploaded int // procesados
	DocumentsRequired int // tipos de documento distintos con deadline aplicable
	DocumentsCount    int // total subidos
	Status            string
	LastActivity      *time.Time
}

// UserStatus deriva el estado de un usuario: complete cuando todos los tipos
// requeridos tienen al menos un documento procesado, pending cuando no hay
// nada procesado, incomplete en el resto de casos.
func UserStatus(docs []*entity.Document, deadlines []*entity.Deadline) RosterStatus {
	requiredTypes := make(map[string]bool)
	for _, d := range deadlines {
		requiredTypes[d.DocumentType] = true
	}

	processedTypes := make(map[string]bool)
	processed := 0
	var last *time.Time
	for _, doc := range docs {
		if doc.Status == entity.DocumentStatusProcessed {
			processed++
			processedTypes[doc.DocumentType] = true
		}
		if last == nil || doc.UploadedAt.After(*last) {
			t := doc.UploadedAt
			last = &t
		}
	}

	covered := 0
	for dt := range requiredTypes {
		if processedTypes[dt] {
			covered++
		}
	}

	status := StatusPending
	switch {
	case len(requiredTypes) > 0 && covered == len(requiredTypes):
		status = StatusComplete
	case processed > 0:
		status = StatusIncomplete
	}

	return RosterStatus{
		DocumentsUploaded: processed,
		DocumentsRequired: len(requiredTypes),
		DocumentsCount:    len(docs),
		Status:            status,
		LastActivity:      last,
	}
}
