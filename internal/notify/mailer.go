package notify

import (
	"context"
	"fmt"

	"github.com/deboeng/careers-backend/internal/config"
	"github.com/wneessen/go-mail"
)

// Mailer delivers notifications over SMTP.
type Mailer struct {
	client *mail.Client
	from   string
}

func NewMailer(cfg *config.Config) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.SMTPUser != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUser),
			mail.WithPassword(cfg.SMTPPassword),
		)
	}

	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return &Mailer{client: client, from: cfg.SMTPFrom}, nil
}

func (m *Mailer) SendApplicationReceived(ctx context.Context, msg ReceivedEmail) error {
	body, err := renderReceived(msg)
	if err != nil {
		return fmt.Errorf("failed to render mail body: %w", err)
	}
	return m.send(ctx, msg.To, "Application Received - "+msg.JobTitle, body)
}

func (m *Mailer) SendStatusUpdate(ctx context.Context, msg StatusEmail) error {
	body, err := renderStatus(msg)
	if err != nil {
		return fmt.Errorf("failed to render mail body: %w", err)
	}
	return m.send(ctx, msg.To, "Application Update - "+msg.JobTitle, body)
}

func (m *Mailer) send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	return m.client.DialAndSendWithContext(ctx, msg)
}
