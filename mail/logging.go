package mail

import (
	"context"
	"fmt"
	"log/slog"
)

type logging struct {
	s   Sender
	log *slog.Logger
}

func NewLogging(s Sender, log *slog.Logger) Sender {
	return logging{
		s:   s,
		log: log,
	}
}

func (l logging) Send(ctx context.Context, msg Message) (err error) {
	err = l.s.Send(ctx, msg)
	l.log.Log(ctx, logLevel(err), fmt.Sprintf("mail.Send(%v, %q): %v", msg.To, msg.Subject, err))
	return
}

func logLevel(err error) (lvl slog.Level) {
	switch err {
	case nil:
		lvl = slog.LevelDebug
	default:
		lvl = slog.LevelError
	}
	return
}
