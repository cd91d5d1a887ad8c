package memory

import (
	"context"
	"sync"

	"my-pets-api/internal/ports/mail"
)

// Sender acumula mails en memoria (dev/tests).
type Sender struct {
	mu   sync.Mutex
	sent []mail.Message
}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, msg mail.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return nil
}

func (s *Sender) Sent() []mail.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]mail.Message, len(s.sent))
	copy(out, s.sent)
	return out
}
