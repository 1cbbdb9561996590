package notification

import (
	"context"
	"fmt"

	"github.com/shopworks/storefront/fulfillment_service/internal/consumers"
	"github.com/shopworks/storefront/fulfillment_service/internal/domain/models"
	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
	"github.com/shopworks/storefront/fulfillment_service/pkg/mailer"
)

// Consumer sends order-confirmation, welcome and password-recovery emails.
type Consumer struct {
	log  logger.Logger
	mail mailer.Mailer
}

func New(log logger.Logger, mail mailer.Mailer) *Consumer {
	return &Consumer{
		log:  log,
		mail: mail,
	}
}

func (c *Consumer) Name() string { return "notification" }

func (c *Consumer) Spec() consumers.Spec {
	return consumers.Spec{
		Queue: models.NotificationQueue,
		Bindings: []consumers.Binding{
			{Exchange: models.OrderEventsExchange, Key: models.RouteOrderCreated},
			{Exchange: models.AuthEventsExchange, Key: models.RouteUserCreated},
			{Exchange: models.AuthEventsExchange, Key: models.RouteUserRecovery},
		},
		Handler: c,
	}
}

func (c *Consumer) Decode(routingKey string, body []byte) (models.Event, error) {
	return models.DecodeEvent(routingKey, body)
}

func (c *Consumer) Handle(ctx context.Context, event models.Event) error {
	switch e := event.(type) {
	case *models.OrderCreatedEvent:
		return c.sendOrderConfirmation(ctx, e)
	case *models.UserCreatedEvent:
		return c.sendWelcome(ctx, e)
	case *models.UserRecoveryEvent:
		return c.sendRecovery(ctx, e)
	default:
		return fmt.Errorf("consumers.notification.Handle: unexpected event %T", event)
	}
}

func (c *Consumer) sendOrderConfirmation(ctx context.Context, event *models.OrderCreatedEvent) error {
	const op = "consumers.notification.sendOrderConfirmation"

	if event.CustomerEmail == "" {
		c.log.WarnContext(ctx, op,
			logger.String("order_code", event.OrderCode),
			logger.String("status", "no recipient, skipped"),
		)
		return nil
	}

	subject := fmt.Sprintf("Order %s confirmed", event.OrderCode)
	body := fmt.Sprintf(
		"Thank you for your purchase!\n\nOrder %s has been received and is being prepared.\nItems: %d\nLoyalty points earned: %d\n",
		event.OrderCode, len(event.Products), event.LoyaltyPointsEarned,
	)

	if err := c.mail.Send(ctx, event.CustomerEmail, subject, body); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Consumer) sendWelcome(ctx context.Context, event *models.UserCreatedEvent) error {
	const op = "consumers.notification.sendWelcome"

	subject := "Welcome to the store"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour account has been created.\nLogin: %s\nPassword: %s\n\nPlease change the password after your first login.\n",
		event.User.FullName, event.User.Email, event.Password,
	)

	if err := c.mail.Send(ctx, event.User.Email, subject, body); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Consumer) sendRecovery(ctx context.Context, event *models.UserRecoveryEvent) error {
	const op = "consumers.notification.sendRecovery"

	subject := "Password recovery"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour password has been reset.\nTemporary password: %s\n\nPlease change it after logging in.\n",
		event.User.FullName, event.Password,
	)

	if err := c.mail.Send(ctx, event.User.Email, subject, body); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
