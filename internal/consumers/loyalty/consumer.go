package loyalty

import (
	"context"
	"fmt"

	"github.com/shopworks/storefront/fulfillment_service/internal/consumers"
	"github.com/shopworks/storefront/fulfillment_service/internal/domain/models"
	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

type pointsCrediter interface {
	AddPoints(ctx context.Context, userID string, points int) error
}

type guestLedger interface {
	LoyaltyPoints(ctx context.Context, guestID string) (int, error)
	Delete(ctx context.Context, guestID string) error
}

// Consumer credits net loyalty points for registered orders and runs the
// guest-identity bridge: on registration it moves the guest's tentative
// points onto the new account and deletes the guest record.
type Consumer struct {
	log     logger.Logger
	balance pointsCrediter
	guests  guestLedger
}

func New(log logger.Logger, balance pointsCrediter, guests guestLedger) *Consumer {
	return &Consumer{
		log:     log,
		balance: balance,
		guests:  guests,
	}
}

func (c *Consumer) Name() string { return "loyalty" }

func (c *Consumer) Specs() []consumers.Spec {
	return []consumers.Spec{
		{
			Queue: models.LoyaltyQueue,
			Bindings: []consumers.Binding{
				{Exchange: models.OrderEventsExchange, Key: models.RouteOrderCreated},
			},
			Handler: c,
		},
		{
			Queue: models.LoyaltyAddedQueue,
			Bindings: []consumers.Binding{
				{Exchange: models.AuthEventsExchange, Key: models.RouteUserRegistered},
			},
			Handler: c,
		},
	}
}

func (c *Consumer) Decode(routingKey string, body []byte) (models.Event, error) {
	return models.DecodeEvent(routingKey, body)
}

func (c *Consumer) Handle(ctx context.Context, event models.Event) error {
	switch e := event.(type) {
	case *models.OrderCreatedEvent:
		return c.creditOrder(ctx, e)
	case *models.UserRegisteredEvent:
		return c.mergeGuest(ctx, e)
	default:
		return fmt.Errorf("consumers.loyalty.Handle: unexpected event %T", event)
	}
}

func (c *Consumer) creditOrder(ctx context.Context, event *models.OrderCreatedEvent) error {
	const op = "consumers.loyalty.creditOrder"

	// guest accrual is the guest-ledger consumer's job
	if event.IsGuest {
		c.log.DebugContext(ctx, op,
			logger.String("order_code", event.OrderCode),
			logger.String("status", "guest order skipped"),
		)
		return nil
	}

	if err := c.balance.AddPoints(ctx, event.UserID, event.NetPoints()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	c.log.InfoContext(ctx, op,
		logger.String("user", event.UserID),
		logger.Int("points", event.NetPoints()),
	)

	return nil
}

// mergeGuest reads the guest's tentative balance, credits it to the new user
// and deletes the guest record. The dedup guard keeps a redelivery of the
// same registration from crediting twice.
func (c *Consumer) mergeGuest(ctx context.Context, event *models.UserRegisteredEvent) error {
	const op = "consumers.loyalty.mergeGuest"

	points, err := c.guests.LoyaltyPoints(ctx, event.OldUserID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if points != 0 {
		if err = c.balance.AddPoints(ctx, event.User.ID, points); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err = c.guests.Delete(ctx, event.OldUserID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	c.log.InfoContext(ctx, op,
		logger.String("guest", event.OldUserID),
		logger.String("user", event.User.ID),
		logger.Int("points", points),
	)

	return nil
}
