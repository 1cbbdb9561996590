package inventory

import (
	"context"
	"fmt"

	"github.com/shopworks/storefront/fulfillment_service/internal/consumers"
	"github.com/shopworks/storefront/fulfillment_service/internal/domain/models"
	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

type stockUpdater interface {
	IncreaseUsed(ctx context.Context, lines []models.OrderLine) error
}

// Consumer moves each order line's quantity onto the variant's used counter.
type Consumer struct {
	log   logger.Logger
	stock stockUpdater
}

func New(log logger.Logger, stock stockUpdater) *Consumer {
	return &Consumer{
		log:   log,
		stock: stock,
	}
}

func (c *Consumer) Name() string { return "inventory" }

func (c *Consumer) Spec() consumers.Spec {
	return consumers.Spec{
		Queue: models.InventoryQueue,
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
	const op = "consumers.inventory.Handle"

	order, ok := event.(*models.OrderCreatedEvent)
	if !ok {
		return fmt.Errorf("%s: unexpected event %T", op, event)
	}

	if err := c.stock.IncreaseUsed(ctx, order.Products); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	c.log.InfoContext(ctx, op,
		logger.String("order_code", order.OrderCode),
		logger.Int("lines", len(order.Products)),
	)

	return nil
}
