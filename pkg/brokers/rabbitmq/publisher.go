package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/shopworks/storefront/fulfillment_service/internal/domain/models"
	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

// ChannelProvider hands out the shared channel, (re)connecting when needed.
type ChannelProvider interface {
	Channel(ctx context.Context) (Channel, error)
}

type Publisher struct {
	log      logger.Logger
	channels ChannelProvider
}

func NewPublisher(log logger.Logger, channels ChannelProvider) *Publisher {
	return &Publisher{
		log:      log,
		channels: channels,
	}
}

// PublishToExchange validates the event, declares the exchange as a durable
// topic exchange and publishes the JSON body with persistent delivery mode.
// A nil return means the broker buffered the publish, not that any consumer
// has processed it.
func (p *Publisher) PublishToExchange(ctx context.Context, exchange, routingKey string, event models.Event) error {
	const op = "brokers.rabbitmq.Publisher.PublishToExchange"

	if err := event.Validate(); err != nil {
		return fmt.Errorf("%s: validate event: %w", op, err)
	}

	ch, err := p.channels.Channel(ctx)
	if err != nil {
		p.log.Error(op, logger.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		p.log.Error(op, logger.String("error", err.Error()))
		return fmt.Errorf("%s: declare exchange: %w", op, err)
	}

	if err = p.publish(ctx, ch, exchange, routingKey, event); err != nil {
		p.log.Error(op, logger.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}

	p.log.DebugContext(ctx, op,
		logger.String("exchange", exchange),
		logger.String("routing_key", routingKey),
	)

	return nil
}

// PublishToQueue publishes directly to a named durable queue through the
// default exchange.
func (p *Publisher) PublishToQueue(ctx context.Context, queue string, event models.Event) error {
	const op = "brokers.rabbitmq.Publisher.PublishToQueue"

	if err := event.Validate(); err != nil {
		return fmt.Errorf("%s: validate event: %w", op, err)
	}

	ch, err := p.channels.Channel(ctx)
	if err != nil {
		p.log.Error(op, logger.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		p.log.Error(op, logger.String("error", err.Error()))
		return fmt.Errorf("%s: declare queue: %w", op, err)
	}

	if err = p.publish(ctx, ch, "", queue, event); err != nil {
		p.log.Error(op, logger.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (p *Publisher) publish(ctx context.Context, ch Channel, exchange, routingKey string, event models.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	return ch.PublishWithContext(ctx, exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.DedupKey(),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
}
