package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shopworks/storefront/fulfillment_service/internal/domain/models"
	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func TestSendOrderConfirmation(t *testing.T) {
	mail := &fakeMailer{}
	consumer := New(logger.NewSlogLogger(logger.EnvLocal), mail)

	err := consumer.Handle(context.Background(), &models.OrderCreatedEvent{
		EventID:             models.NewEventID(),
		OrderCode:           "ORD-1A2B3C4D",
		UserID:              "user-1",
		CustomerEmail:       "ada@example.com",
		Products:            []models.OrderLine{{ProductID: "p1", Quantity: 2}},
		LoyaltyPointsEarned: 15,
	})
	require.NoError(t, err)

	require.Len(t, mail.sent, 1)
	require.Equal(t, "ada@example.com", mail.sent[0].to)
	require.Contains(t, mail.sent[0].subject, "ORD-1A2B3C4D")
	require.Contains(t, mail.sent[0].body, "ORD-1A2B3C4D")
}

func TestSendOrderConfirmationWithoutRecipient(t *testing.T) {
	mail := &fakeMailer{}
	consumer := New(logger.NewSlogLogger(logger.EnvLocal), mail)

	err := consumer.Handle(context.Background(), &models.OrderCreatedEvent{
		EventID:   models.NewEventID(),
		OrderCode: "ORD-1A2B3C4D",
		IsGuest:   true,
		UserID:    "guest-1",
		Products:  []models.OrderLine{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)
	require.Empty(t, mail.sent)
}

func TestSendWelcome(t *testing.T) {
	mail := &fakeMailer{}
	consumer := New(logger.NewSlogLogger(logger.EnvLocal), mail)

	err := consumer.Handle(context.Background(), &models.UserCreatedEvent{
		EventID:  models.NewEventID(),
		User:     models.UserPayload{ID: "user-1", Email: "ada@example.com", FullName: "Ada Lovelace"},
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	require.Len(t, mail.sent, 1)
	require.Equal(t, "ada@example.com", mail.sent[0].to)
	require.Contains(t, mail.sent[0].body, "s3cret-pass")
}

func TestSendRecovery(t *testing.T) {
	mail := &fakeMailer{}
	consumer := New(logger.NewSlogLogger(logger.EnvLocal), mail)

	err := consumer.Handle(context.Background(), &models.UserRecoveryEvent{
		EventID:  models.NewEventID(),
		User:     models.UserPayload{ID: "user-1", Email: "ada@example.com", FullName: "Ada Lovelace"},
		Password: "tmp-pass",
	})
	require.NoError(t, err)

	require.Len(t, mail.sent, 1)
	require.Contains(t, mail.sent[0].subject, "recovery")
	require.Contains(t, mail.sent[0].body, "tmp-pass")
}

func TestHandleMailerError(t *testing.T) {
	expErr := errors.New("relay unavailable")
	consumer := New(logger.NewSlogLogger(logger.EnvLocal), &fakeMailer{err: expErr})

	err := consumer.Handle(context.Background(), &models.UserRecoveryEvent{
		EventID:  models.NewEventID(),
		User:     models.UserPayload{ID: "user-1", Email: "ada@example.com"},
		Password: "tmp-pass",
	})
	require.ErrorIs(t, err, expErr)
}

func TestSpec(t *testing.T) {
	consumer := New(logger.NewSlogLogger(logger.EnvLocal), &fakeMailer{})

	spec := consumer.Spec()
	require.Equal(t, models.NotificationQueue, spec.Queue)
	require.Len(t, spec.Bindings, 3)
}
