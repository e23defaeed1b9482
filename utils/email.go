package utils

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"github.com/rtharindu/echannaling-admin/config"
)

// Mailer sends transactional mail through the configured SMTP relay.
type Mailer struct {
	from   string
	dialer *gomail.Dialer
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		from:   cfg.EmailUser,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass),
	}
}

func (m *Mailer) SendEmail(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	return m.dialer.DialAndSend(msg)
}

func (m *Mailer) SendWelcomeEmail(to, name string) error {
	return m.SendEmail(to, "Welcome to eChannelling", welcomeBody(name))
}

func welcomeBody(name string) string {
	return fmt.Sprintf(
		"<p>Hello %s,</p><p>Your agent account on eChannelling has been created.</p>",
		html.EscapeString(name),
	)
}
