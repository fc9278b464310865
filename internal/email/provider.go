package email

// Provider sends transactional email.
type Provider interface {
	// Send delivers a single message.
	Send(to, subject, htmlBody string) error

	// SendWelcome greets a newly registered user.
	SendWelcome(to, name string) error

	// SendPasswordReset delivers a reset token to the account owner.
	SendPasswordReset(to, token string) error
}
