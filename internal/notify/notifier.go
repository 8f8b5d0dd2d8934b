// Package notify is the outbound notification sink. The lifecycle core
// decides when to call it and with what payload; delivery is best-effort and
// a failure never affects the committed state change that triggered it.
package notify

import "context"

// ReceivedEmail is the payload for the application-received template.
type ReceivedEmail struct {
	To          string
	FirstName   string
	JobTitle    string
	ReferenceID string
}

// StatusEmail is the payload for the status-update template.
type StatusEmail struct {
	To         string
	FirstName  string
	JobTitle   string
	Status     string
	AdminNotes string
}

type Notifier interface {
	SendApplicationReceived(ctx context.Context, msg ReceivedEmail) error
	SendStatusUpdate(ctx context.Context, msg StatusEmail) error
}

// Nop drops every notification. Used when SMTP is not configured.
type Nop struct{}

func (Nop) SendApplicationReceived(context.Context, ReceivedEmail) error { return nil }
func (Nop) SendStatusUpdate(context.Context, StatusEmail) error         { return nil }
