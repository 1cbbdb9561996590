package guestledger

import (
	"context"
	"fmt"

	"github.com/shopworks/storefront/fulfillment_service/internal/consumers"
	"github.com/shopworks/storefront/fulfillment_service/internal/domain/models"
	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

type guestLedger interface {
	RecordOrder(ctx context.Context, guestID, orderCode string, points int) error
}

// Consumer accrues a guest order's earned points into the guest session and
// clears the guest's cart. Registered orders are the loyalty consumer's job.
type Consumer struct {
	log    logger.Logger
	guests guestLedger
}

func New(log logger.Logger, guests guestLedger) *Consumer {
	return &Consumer{
		log:    log,
		guests: guests,
	}
}

func (c *Consumer) Name() string { return "guest_ledger" }

func (c *Consumer) Spec() consumers.Spec {
	return consumers.Spec{
		Queue: models.RedisQueue,
		Bindings: []consumers.Binding{
			{Exchange: models.OrderEventsExchange, Key: models.RouteOrderCreated},
		},
		Handler: c,
	}
}

func (c *Consumer) Decode(routingKey string, body []byte) (models.Event, error) {
	return models.DecodeEvent(routingKey, body)
}

func (c *Consumer) Handle(ctx context.Context, event models.Event) error {
	const op = "consumers.guestledger.Handle"

	order, ok := event.(*models.OrderCreatedEvent)
	if !ok {
		return fmt.Errorf("%s: unexpected event %T", op, event)
	}

	if !order.IsGuest {
		return nil
	}

	if err := c.guests.RecordOrder(ctx, order.UserID, order.OrderCode, order.LoyaltyPointsEarned); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	c.log.InfoContext(ctx, op,
		logger.String("guest", order.UserID),
		logger.String("order_code", order.OrderCode),
		logger.Int("points", order.LoyaltyPointsEarned),
	)

	return nil
}
