package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type smtpSender struct {
	dialer *gomail.Dialer
}

func NewSMTPSender(host string, port int, user, pass string) Sender {
	return smtpSender{
		dialer: gomail.NewDialer(host, port, user, pass),
	}
}

func (s smtpSender) Send(ctx context.Context, msg Message) (err error) {
	if err = ctx.Err(); err != nil {
		return
	}
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	if err = s.dialer.DialAndSend(m); err != nil {
		err = fmt.Errorf("%w: %s", ErrDelivery, err)
	}
	return
}
