// Package notify holds the outbound message senders. LogNotifier writes each
// message to a structured log; it stands in for a mail relay in environments
// that do not deliver to customers.
package notify

import (
	"context"
	"log/slog"
	"strings"

	"workorders/internal/core/ports"
	"workorders/internal/pkg/errs"
)

// LogNotifier implements ports.Notifier by logging the message.
type LogNotifier struct {
	from   string
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that logs messages sent from the given
// address.
func NewLogNotifier(from string, logger *slog.Logger) *LogNotifier {
	return &LogNotifier{
		from:   strings.TrimSpace(from),
		logger: logger.With("component", "log_notifier"),
	}
}

// Send logs msg at info level.
func (n *LogNotifier) Send(ctx context.Context, msg ports.Message) error {
	if strings.TrimSpace(msg.To) == "" {
		return errs.NewValueIsRequiredError("recipient")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	n.logger.InfoContext(ctx, "Message sent",
		"from", n.from,
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}
