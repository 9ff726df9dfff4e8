package mailer

import (
	"gopkg.in/gomail.v2"
)

// Mailer sends a single HTML email.
type Mailer interface {
	Send(to, subject, htmlBody string) error
	Enabled() bool
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type SMTPMailer struct {
	from   string
	dialer *gomail.Dialer
}

// New returns an SMTP mailer, or a no-op mailer when no host is configured.
func New(cfg SMTPConfig) Mailer {
	if cfg.Host == "" {
		return Noop{}
	}
	return &SMTPMailer{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (m *SMTPMailer) Enabled() bool { return true }

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}

type Noop struct{}

func (Noop) Enabled() bool             { return false }
func (Noop) Send(_, _, _ string) error { return nil }
