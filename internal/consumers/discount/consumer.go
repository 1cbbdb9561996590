package discount

import (
	"context"
	"fmt"

	"github.com/shopworks/storefront/fulfillment_service/internal/consumers"
	"github.com/shopworks/storefront/fulfillment_service/internal/domain/models"
	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

type usageCounter interface {
	IncrementUsedCount(ctx context.Context, code string) error
}

// Consumer counts one use of the applied discount code per order.
type Consumer struct {
	log   logger.Logger
	usage usageCounter
}

func New(log logger.Logger, usage usageCounter) *Consumer {
	return &Consumer{
		log:   log,
		usage: usage,
	}
}

func (c *Consumer) Name() string { return "discount" }

func (c *Consumer) Spec() consumers.Spec {
	return consumers.Spec{
		Queue: models.DiscountQueue,
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
	const op = "consumers.discount.Handle"

	order, ok := event.(*models.OrderCreatedEvent)
	if !ok {
		return fmt.Errorf("%s: unexpected event %T", op, event)
	}

	if order.DiscountInfo == nil || order.DiscountInfo.Code == "" {
		return nil
	}

	if err := c.usage.IncrementUsedCount(ctx, order.DiscountInfo.Code); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	c.log.InfoContext(ctx, op,
		logger.String("order_code", order.OrderCode),
		logger.String("code", order.DiscountInfo.Code),
	)

	return nil
}
