package email

import "sync"

// MockProvider records messages instead of sending them. Used in tests and
// when SMTP is not configured.
type MockProvider struct {
	mu   sync.Mutex
	Sent []MockMessage
}

type MockMessage struct {
	To      string
	Subject string
	Body    string
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Send(to, subject, htmlBody string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Sent = append(p.Sent, MockMessage{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func (p *MockProvider) SendWelcome(to, name string) error {
	return p.Send(to, "Welcome to TailorLink", name)
}

func (p *MockProvider) SendPasswordReset(to, token string) error {
	return p.Send(to, "Password reset", token)
}

// Messages returns a copy of everything recorded so far.
func (p *MockProvider) Messages() []MockMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]MockMessage(nil), p.Sent...)
}
