package compliance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/documentflow/documentflow-api/internal/application/compliance"
	"github.com/documentflow/documentflow-api/internal/domain/entity"
)

func doc(userID, docType, status string, uploadedAt time.Time) *entity.Document {
	return &entity.Document{
		ID:           docType + "-" + status,
		UserID:       userID,
		DocumentType: docType,
		Status:       status,
		UploadedAt:   uploadedAt,
	}
}

func TestPercentage_SinDocumentos_EsCero(t *testing.T) {
	assert.Equal(t, 0, compliance.Percentage(0, 0))
	assert.Equal(t, 0, compliance.Percentage(5, 0), "total cero siempre es 0, sin importar processed")
}

func TestPercentage_Redondeo(t *testing.T) {
	assert.Equal(t, 50, compliance.Percentage(1, 2))
	assert.Equal(t, 33, compliance.Percentage(1, 3))
	assert.Equal(t, 67, compliance.Percentage(2, 3))
	assert.Equal(t, 100, compliance.Percentage(3, 3))
	assert.Equal(t, 17, compliance.Percentage(1, 6)) // 16.67 redondea a 17
}

// El porcentaje es monotónico en processed con total fijo.
func TestPercentage_MonotonicoEnProcesados(t *testing.T) {
	const total = 7
	prev := -1
	for processed := 0; processed <= total; processed++ {
		pct := compliance.Percentage(processed, total)
		require.GreaterOrEqual(t, pct, prev)
		require.GreaterOrEqual(t, pct, 0)
		require.LessOrEqual(t, pct, 100)
		prev = pct
	}
}

func TestComputeUserStats(t *testing.T) {
	docs := []*entity.Document{
		doc("u1", "identification", entity.DocumentStatusProcessed, now),
		doc("u1", "address_proof", entity.DocumentStatusPending, now),
	}
	deadlines := []*entity.Deadline{
		{ID: "d1", DocumentType: "contract", DueDate: now.Add(3 * 24 * time.Hour)},
		{ID: "d2", DocumentType: "identification", DueDate: now.Add(20 * 24 * time.Hour)}, // fuera de la semana
		{ID: "d3", DocumentType: "address_proof", DueDate: now.Add(-24 * time.Hour)},      // ya vencida
	}

	stats := compliance.ComputeUserStats(docs, deadlines, now)
	assert.Equal(t, 1, stats.Uploaded)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Upcoming, "solo cuenta deadlines dentro de los próximos 7 días")
	assert.Equal(t, 50, stats.Compliance)
}

func TestComputeUserStats_SinDocumentos(t *testing.T) {
	stats := compliance.ComputeUserStats(nil, nil, now)
	assert.Equal(t, compliance.UserStats{}, stats, "colección vacía deriva todo en cero")
}

// Escenario de extremo a extremo del cumplimiento: usuario de IT con dos
// documentos, uno procesado → 50; al procesar el segundo → 100, igual que
// el agregado del departamento.
func TestByDepartment_EscenarioCompleto(t *testing.T) {
	users := []*entity.User{
		{ID: "u1", Department: "IT"},
	}
	pending := doc("u1", "address_proof", entity.DocumentStatusPending, now)
	docs := []*entity.Document{
		doc("u1", "identification", entity.DocumentStatusProcessed, now),
		pending,
	}

	result := compliance.ByDepartment(users, docs)
	require.Len(t, result, 1)
	assert.Equal(t, "IT", result[0].Name)
	assert.Equal(t, 50, result[0].Percentage)

	pending.Status = entity.DocumentStatusProcessed
	result = compliance.ByDepartment(users, docs)
	assert.Equal(t, 100, result[0].Percentage)
}

func TestByDepartment_DepartamentoSinDocumentos_EsCero(t *testing.T) {
	users := []*entity.User{
		{ID: "u1", Department: "Ventas"},
		{ID: "u2", Department: "IT"},
	}
	docs := []*entity.Document{
		doc("u2", "identification", entity.DocumentStatusProcessed, now),
	}

	result := compliance.ByDepartment(users, docs)
	require.Len(t, result, 2)
	// Ordenado por nombre: IT, Ventas
	assert.Equal(t, "IT", result[0].Name)
	assert.Equal(t, 100, result[0].Percentage)
	assert.Equal(t, "Ventas", result[1].Name)
	assert.Equal(t, 0, result[1].Percentage)
}

func TestUserStatus(t *testing.T) {
	deadlines := []*entity.Deadline{
		{ID: "d1", DocumentType: "identification", IsGlobal: true},
		{ID: "d2", DocumentType: "contract", IsGlobal: true},
	}

	t.Run("sin documentos es pending", func(t *testing.T) {
		st := compliance.UserStatus(nil, deadlines)
		assert.Equal(t, compliance.StatusPending, st.Status)
		assert.Equal(t, 2, st.DocumentsRequired)
		assert.Nil(t, st.LastActivity)
	})

	t.Run("cobertura parcial es incomplete", func(t *testing.T) {
		docs := []*entity.Document{
			doc("u1", "identification", entity.DocumentStatusProcessed, now),
		}
		st := compliance.UserStatus(docs, deadlines)
		assert.Equal(t, compliance.StatusIncomplete, st.Status)
		assert.Equal(t, 1, st.DocumentsUploaded)
	})

	t.Run("todos los tipos cubiertos es complete", func(t *testing.T) {
		docs := []*entity.Document{
			doc("u1", "identification", entity.DocumentStatusProcessed, now),
			doc("u1", "contract", entity.DocumentStatusProcessed, now.Add(time.Hour)),
		}
		st := compliance.UserStatus(docs, deadlines)
		assert.Equal(t, compliance.StatusComplete, st.Status)
		require.NotNil(t, st.LastActivity)
		assert.Equal(t, now.Add(time.Hour), *st.LastActivity)
	})
}
