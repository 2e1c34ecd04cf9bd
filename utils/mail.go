package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/feneonmalo-star/La-boutique-de-Lea/config"
	"github.com/feneonmalo-star/La-boutique-de-Lea/models"
)

var confirmationTemplate = template.Must(template.New("orderConfirmation").Parse(`
<html>
  <body>
    <h2>Merci pour votre commande !</h2>
    <p>Votre paiement de {{printf "%.2f" .Total}} € pour la commande {{.ID}} a bien été reçu.</p>
    <p>La Boutique de Léa</p>
  </body>
</html>`))

// Mailer sends transactional email over plain SMTP.
type Mailer struct {
	smtpAddress string
	smtpHost    string
	from        string
	password    string
}

// NewMailer returns nil when no sender address is configured, which disables
// email without special-casing at the call sites.
func NewMailer(cfg *config.Config) *Mailer {
	if cfg.FromEmail == "" || cfg.SMTPAddress == "" {
		return nil
	}
	return &Mailer{
		smtpAddress: cfg.SMTPAddress,
		smtpHost:    cfg.SMTPHost,
		from:        cfg.FromEmail,
		password:    cfg.FromEmailPassword,
	}
}

// SendOrderConfirmation is a no-op on a nil receiver, so a nil *Mailer stored
// in an interface stays harmless.
func (m *Mailer) SendOrderConfirmation(to string, order *models.Order) error {
	if m == nil {
		return nil
	}
	var body bytes.Buffer
	if err := confirmationTemplate.Execute(&body, order); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	message := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Confirmation de commande\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		m.from, to, body.String(),
	)

	auth := smtp.PlainAuth("", m.from, m.password, m.smtpHost)
	if err := smtp.SendMail(m.smtpAddress, auth, m.from, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
