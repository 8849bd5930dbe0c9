package notifiers

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/gbpkcompany/brief.job/models"
)

type Mailer struct {
	smtpHost string
	smtpPort string
	from     string
	password string
}

func NewMailer(smtpHost, smtpPort, from, password string) *Mailer {
	return &Mailer{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		from:     from,
		password: password,
	}
}

// Send submits exactly one message addressed to all recipients over an
// authenticated SMTP session. Delivery failure is returned to the
// caller; there is no retry and no queue, the scheduler re-triggers
// the whole run on its next interval.
func (m *Mailer) Send(mail models.Email) error {
	if len(mail.To) == 0 {
		return fmt.Errorf("send email: no recipients")
	}

	message := m.message(mail)

	auth := smtp.PlainAuth("", m.from, m.password, m.smtpHost)
	addr := fmt.Sprintf("%s:%s", m.smtpHost, m.smtpPort)
	err := smtp.SendMail(addr, auth, m.from, mail.To, []byte(message))
	if err != nil {
		slog.Error("Failed to send email", "error", err)
		return err
	}

	slog.Info("email sent", "recipients", len(mail.To), "subject", mail.Subject)
	return nil
}

func (m *Mailer) message(mail models.Email) string {
	return fmt.Sprintf(`From: GBPK Brief <%s>
To: %s
Subject: %s
MIME-Version: 1.0
Content-Type: text/html; charset=UTF-8

%s`, m.from, strings.Join(mail.To, ", "), mail.Subject, mail.Body)
}
