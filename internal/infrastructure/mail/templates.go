package mail

import (
	"fmt"
	"time"

	"github.com/documentflow/documentflow-api/internal/domain/entity"
)

// Cuerpos HTML fijos por interpolación; no hace falta un motor de plantillas
// para tres correos.

const bodyStyle = `body { font-family: 'Inter', Arial, sans-serif; line-height: 1.6; color: #333; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; }
.header { color: white; padding: 30px; border-radius: 8px 8px 0 0; text-align: center; }
.content { background: white; padding: 30px; border: 1px solid #e5e7eb; }
.footer { background: #f9fafb; padding: 20px; text-align: center; font-size: 14px; color: #6b7280; }
.box { background: #f3f4f6; padding: 20px; border-radius: 6px; margin: 20px 0; }
.button { display: inline-block; background: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; margin: 20px 0; }`

const footer = `<div class="footer">
<p>DocumentFlow - Portal de entrega de documentos</p>
<p>Este es un correo automático, por favor no responder.</p>
</div>`

func page(headerColor, title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><style>%s</style></head>
<body><div class="container">
<div class="header" style="background:%s"><h1>%s</h1></div>
<div class="content">%s</div>
%s
</div></body>
</html>`, bodyStyle, headerColor, title, content, footer)
}

func documentUploadedBody(doc *entity.Document, appURL string) string {
	content := fmt.Sprintf(`<p>¡Hola!</p>
<p>Te confirmamos que tu documento fue subido exitosamente a DocumentFlow.</p>
<div class="box">
<h3>Detalles del documento:</h3>
<p><strong>Nombre:</strong> %s</p>
<p><strong>Tipo:</strong> %s</p>
<p><strong>Tamaño:</strong> %.2f MB</p>
<p><strong>Estado:</strong> %s</p>
</div>
<p>Tu documento está en revisión y recibirás una notificación cuando esté listo.</p>
<a href="%s/documents" class="button">Ver mis documentos</a>`,
		doc.OriginalName, doc.DocumentType,
		float64(doc.FileSize)/(1024*1024), statusLabel(doc.Status), appURL)
	return page("#2563eb", "Documento subido exitosamente", content)
}

func reminderBody(deadline *entity.Deadline, appURL string) string {
	content := fmt.Sprintf(`<p>¡Hola!</p>
<p>Te recordamos que tienes una fecha límite próxima para subir documentos.</p>
<div class="box" style="background:#fef3c7;border-left:4px solid #f59e0b">
<h3>%s</h3>
<p><strong>Fecha límite:</strong> %s</p>
<p><strong>Descripción:</strong> %s</p>
</div>
<p><strong>¡No olvides subir tus documentos antes de la fecha límite!</strong></p>
<a href="%s/upload" class="button" style="background:#dc2626">Subir documentos ahora</a>`,
		deadline.Title, formatDate(deadline.DueDate), orDefault(deadline.Description), appURL)
	return page("#f59e0b", "Recordatorio importante", content)
}

func deadlineBody(deadline *entity.Deadline, appURL string) string {
	content := fmt.Sprintf(`<p>¡Atención!</p>
<p>Se acerca la fecha límite para subir los siguientes documentos:</p>
<div class="box" style="background:#fee2e2;border-left:4px solid #dc2626">
<h3>%s</h3>
<p><strong>Fecha límite:</strong> %s</p>
<p><strong>Descripción:</strong> %s</p>
</div>
<p><strong>¡Es importante que subas tus documentos antes de la fecha límite!</strong></p>
<a href="%s/upload" class="button" style="background:#dc2626">Subir documentos ahora</a>`,
		deadline.Title, formatDate(deadline.DueDate), orDefault(deadline.Description), appURL)
	return page("#dc2626", "Fecha límite próxima", content)
}

func statusLabel(status string) string {
	if status == entity.DocumentStatusPending {
		return "Pendiente de revisión"
	}
	return "Procesado"
}

func orDefault(s string) string {
	if s == "" {
		return "No hay descripción adicional"
	}
	return s
}

var meses = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// formatDate devuelve la fecha en formato largo es-ES, ej: "10 de marzo de 2025".
func formatDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), meses[t.Month()-1], t.Year())
}
