package ports

import "context"

// Message is a plain-text notification.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Notifier delivers messages to an address.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}
