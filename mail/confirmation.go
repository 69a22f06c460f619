package mail

import (
	"bytes"
	"context"
	"fmt"

	"eventex/models"
	"eventex/templates"
)

const ConfirmationSubject = "Confirmação de inscrição"

const confirmationTemplate = "subscriptions/subscription_email.txt"

// Confirmation renders the message sent after a subscription is stored.
func Confirmation(from string, subscription models.Subscription) (msg Message, err error) {
	tmpl, err := templates.Text(confirmationTemplate)
	if err != nil {
		return msg, fmt.Errorf("loading %s: %w", confirmationTemplate, err)
	}
	var body bytes.Buffer
	if err = tmpl.Execute(&body, subscription); err != nil {
		return msg, fmt.Errorf("rendering %s: %w", confirmationTemplate, err)
	}
	msg = Message{
		From:    from,
		To:      []string{subscription.Email},
		Subject: ConfirmationSubject,
		Body:    body.String(),
	}
	return msg, nil
}

// SendConfirmation renders and sends the confirmation for subscription.
func SendConfirmation(ctx context.Context, s Sender, from string, subscription models.Subscription) error {
	msg, err := Confirmation(from, subscription)
	if err != nil {
		return err
	}
	return s.Send(ctx, msg)
}
