// Package notification is the outbound push side channel. Business
// operations enqueue messages and move on: delivery is best-effort and a
// delivery failure can never fail or retry the operation that caused it.
package notification

import (
	"context"
	"time"
)

// Notifier is what usecases see. An empty token is silently skipped.
type Notifier interface {
	Notify(ctx context.Context, token, title, body string)
}

// Message is one queued push notification.
type Message struct {
	ID         string    `json:"id"`
	Token      string    `json:"token"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// Nop discards everything. Used when push is disabled and in tests.
type Nop struct{}

func (Nop) Notify(context.Context, string, string, string) {}
