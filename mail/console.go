package mail

import (
	"context"
	"log/slog"
	"strings"
)

type consoleSender struct {
	log *slog.Logger
}

// NewConsoleSender writes messages to the log instead of delivering them.
func NewConsoleSender(log *slog.Logger) Sender {
	return consoleSender{
		log: log,
	}
}

func (cs consoleSender) Send(ctx context.Context, msg Message) error {
	cs.log.InfoContext(
		ctx,
		"mail message",
		"from", msg.From,
		"to", strings.Join(msg.To, ", "),
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}
