package orderid

import (
	"context"
	"fmt"

	"github.com/shopworks/storefront/fulfillment_service/internal/consumers"
	"github.com/shopworks/storefront/fulfillment_service/internal/domain/models"
	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

type orderReassigner interface {
	ReassignUser(ctx context.Context, oldUserID, newUserID string) error
}

// Consumer rewrites the owner of a converted guest's historical orders.
type Consumer struct {
	log    logger.Logger
	orders orderReassigner
}

func New(log logger.Logger, orders orderReassigner) *Consumer {
	return &Consumer{
		log:    log,
		orders: orders,
	}
}

func (c *Consumer) Name() string { return "order_id" }

func (c *Consumer) Spec() consumers.Spec {
	return consumers.Spec{
		Queue: models.OrderIDQueue,
		Bindings: []consumers.Binding{
			{Exchange: models.OrderEventsExchange, Key: models.RouteOrderConverter},
		},
		Handler: c,
	}
}

func (c *Consumer) Decode(routingKey string, body []byte) (models.Event, error) {
	return models.DecodeEvent(routingKey, body)
}

func (c *Consumer) Handle(ctx context.Context, event models.Event) error {
	const op = "consumers.orderid.Handle"

	converter, ok := event.(*models.OrderConverterEvent)
	if !ok {
		return fmt.Errorf("%s: unexpected event %T", op, event)
	}

	if err := c.orders.ReassignUser(ctx, converter.OldUserID, converter.NewUserID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
