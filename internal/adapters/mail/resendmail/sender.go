package resendmail

import (
	"context"
	"fmt"
	"strings"

	"my-pets-api/internal/platform/httpclient"
	"my-pets-api/internal/ports/mail"

	"github.com/resend/resend-go/v2"
)

// Sender implementa mail.Sender sobre Resend.
type Sender struct {
	client *resend.Client
	from   string
}

func New(apiKey, from string) (*Sender, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("resendmail: api key required")
	}
	return &Sender{
		client: resend.NewCustomClient(httpclient.New(httpclient.DefaultTimeout), apiKey),
		from:   from,
	}, nil
}

func (s *Sender) Send(ctx context.Context, msg mail.Message) error {
	_, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("resendmail: send: %w", err)
	}
	return nil
}
