package place

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/shopworks/storefront/fulfillment_service/internal/domain/models"
	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

type orderCreator interface {
	Create(ctx context.Context, order *models.Order) error
}

type eventPublisher interface {
	PublishToExchange(ctx context.Context, exchange, routingKey string, event models.Event) error
}

// Service persists an order and publishes the order.created event that
// drives the whole fulfillment fan-out.
type Service struct {
	log    logger.Logger
	orders orderCreator
	events eventPublisher
}

func New(log logger.Logger, orders orderCreator, events eventPublisher) *Service {
	return &Service{
		log:    log,
		orders: orders,
		events: events,
	}
}

func (s *Service) Place(ctx context.Context, order *models.Order) (string, error) {
	const op = "services.order.place.Place"

	if order.OrderCode == "" {
		order.OrderCode = newOrderCode()
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	event := &models.OrderCreatedEvent{
		EventID:             models.NewEventID(),
		OrderCode:           order.OrderCode,
		IsGuest:             order.IsGuest,
		UserID:              order.UserID,
		CustomerEmail:       order.CustomerEmail,
		Products:            order.Products,
		LoyaltyPointsEarned: order.LoyaltyPointsEarned,
		LoyaltyPointsUsed:   order.LoyaltyPointsUsed,
	}

	if order.DiscountCode != "" {
		event.DiscountInfo = &models.DiscountInfo{Code: order.DiscountCode}
	}

	// The order row is already committed. There is no outbox, so a failed
	// publish means the fulfillment side never hears about this order; the
	// caller has to decide what to tell the shopper.
	if err := s.events.PublishToExchange(ctx, models.OrderEventsExchange, models.RouteOrderCreated, event); err != nil {
		s.log.ErrorContext(ctx, op,
			logger.String("order_code", order.OrderCode),
			logger.String("error", err.Error()),
		)
		return order.OrderCode, fmt.Errorf("%s: publish order.created: %w", op, err)
	}

	s.log.InfoContext(ctx, op, logger.String("order_code", order.OrderCode))

	return order.OrderCode, nil
}

func newOrderCode() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}
