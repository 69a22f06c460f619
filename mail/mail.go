// Package mail renders and dispatches the confirmation e-mails.
package mail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eventex/config"
)

var ErrDelivery = errors.New("mail delivery failed")
var ErrUnknownBackend = errors.New("unknown mail backend")

type Message struct {
	From    string
	To      []string
	Subject string
	Body    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New builds the sender selected by cfg.Mail.Backend, already wrapped with logging.
func New(cfg config.Configuration, log *slog.Logger) (Sender, error) {
	var s Sender
	switch cfg.Mail.Backend {
	case "smtp":
		s = NewSMTPSender(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Pass)
	case "console":
		s = NewConsoleSender(log)
	case "memory":
		s = NewOutbox()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Mail.Backend)
	}
	return NewLogging(s, log), nil
}
