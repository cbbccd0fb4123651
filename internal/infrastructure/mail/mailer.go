// Package mail envía los correos del portal vía SMTP (gomail). Los envíos son
// best-effort: el caller registra y descarta el error, nunca falla la
// operación principal por un correo.
package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/documentflow/documentflow-api/internal/domain/entity"
	"github.com/documentflow/documentflow-api/pkg/config"
	"github.com/documentflow/documentflow-api/pkg/logger"
)

// Mailer cliente SMTP del portal. Sin relay configurado los envíos se omiten
// silenciosamente (modo desarrollo).
type Mailer struct {
	dialer  *gomail.Dialer
	from    string
	appURL  string
	enabled bool
	log     *logger.Logger
}

// NewMailer construye el cliente a partir de la configuración SMTP.
func NewMailer(cfg config.SMTPConfig, appURL string, log *logger.Logger) *Mailer {
	m := &Mailer{
		from:    cfg.From,
		appURL:  appURL,
		enabled: cfg.Enabled(),
		log:     log,
	}
	if m.enabled {
		m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	}
	return m
}

// SendDocumentUploaded confirma al dueño que su documento fue recibido.
func (m *Mailer) SendDocumentUploaded(user *entity.User, doc *entity.Document) error {
	subject := "Documento subido exitosamente - DocumentFlow"
	return m.send([]string{user.Email}, subject, documentUploadedBody(doc, m.appURL))
}

// SendReminder envía el recordatorio de una fecha límite a los destinatarios
// resueltos por el caller (todos los usuarios si el deadline es global).
func (m *Mailer) SendReminder(recipients []string, deadline *entity.Deadline) error {
	subject := fmt.Sprintf("Recordatorio: %s - DocumentFlow", deadline.Title)
	body := reminderBody(deadline, m.appURL)
	for _, to := range recipients {
		if err := m.send([]string{to}, subject, body); err != nil {
			return err
		}
	}
	return nil
}

// SendDeadlineApproaching avisa a un usuario de una fecha límite próxima.
func (m *Mailer) SendDeadlineApproaching(user *entity.User, deadline *entity.Deadline) error {
	subject := fmt.Sprintf("Fecha límite próxima: %s - DocumentFlow", deadline.Title)
	return m.send([]string{user.Email}, subject, deadlineBody(deadline, m.appURL))
}

func (m *Mailer) send(to []string, subject, htmlBody string) error {
	if !m.enabled {
		m.log.Debug().Strs("to", to).Str("subject", subject).
			Msg("SMTP no configurado, correo omitido")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("enviar correo: %w", err)
	}
	return nil
}
