package email

import (
	"fmt"

	"tailorlink_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider implements Provider over SMTP via gomail.
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.Email.FromEmail, p.cfg.Email.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

func (p *SMTPProvider) SendWelcome(to, name string) error {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Welcome to TailorLink. Your account is ready.</p>",
		name,
	)
	return p.Send(to, "Welcome to TailorLink", body)
}

func (p *SMTPProvider) SendPasswordReset(to, token string) error {
	body := fmt.Sprintf(
		"<p>A password reset was requested for your account.</p>"+
			"<p>Your reset token: <b>%s</b></p>"+
			"<p>The token expires in 1 hour. If you did not request this, ignore this message.</p>",
		token,
	)
	return p.Send(to, "Password reset", body)
}
