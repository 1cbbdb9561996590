package consumers

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/shopworks/storefront/fulfillment_service/internal/domain/models"
	"github.com/shopworks/storefront/fulfillment_service/internal/idempotency"
	"github.com/shopworks/storefront/fulfillment_service/pkg/brokers/rabbitmq"
	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

// Handler is one consumer's business side. Decode turns a raw body into a
// validated event; Handle applies the effect. Handle must be safe to call
// again after an error, since the runner retries before dead-lettering.
type Handler interface {
	Name() string
	Decode(routingKey string, body []byte) (models.Event, error)
	Handle(ctx context.Context, event models.Event) error
}

type Binding struct {
	Exchange string
	Key      string
}

// Spec is one durable queue plus the exchange bindings feeding it.
type Spec struct {
	Queue    string
	Bindings []Binding
	Handler  Handler
}

// Runner drives a Spec: declares the topology, consumes with manual acks,
// deduplicates deliveries and retries failed handlers before dead-lettering.
type Runner struct {
	log              logger.Logger
	channels         rabbitmq.ChannelProvider
	dedup            idempotency.Store
	maxAttempts      int
	retryBackoff     time.Duration
	resubscribeDelay time.Duration
}

func NewRunner(
	log logger.Logger,
	channels rabbitmq.ChannelProvider,
	dedup idempotency.Store,
	maxAttempts int,
	retryBackoff time.Duration,
) *Runner {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	if retryBackoff <= 0 {
		retryBackoff = 500 * time.Millisecond
	}

	return &Runner{
		log:              log,
		channels:         channels,
		dedup:            dedup,
		maxAttempts:      maxAttempts,
		retryBackoff:     retryBackoff,
		resubscribeDelay: 5 * time.Second,
	}
}

// Start blocks until ctx is done, resubscribing whenever the delivery stream
// is lost (channel or connection drop).
func (r *Runner) Start(ctx context.Context, spec Spec) error {
	const op = "consumers.Runner.Start"

	for {
		deliveries, err := r.subscribe(ctx, spec)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			r.log.Error(op,
				logger.String("queue", spec.Queue),
				logger.String("error", err.Error()),
			)

			select {
			case <-time.After(r.resubscribeDelay):
				continue
			case <-ctx.Done():
				return nil
			}
		}

		r.log.Info(op, logger.String("queue", spec.Queue), logger.String("status", "consuming"))

		r.consumeLoop(ctx, spec, deliveries)

		if ctx.Err() != nil {
			return nil
		}

		r.log.Warn(op, logger.String("queue", spec.Queue), logger.String("status", "subscription lost"))
	}
}

func (r *Runner) subscribe(ctx context.Context, spec Spec) (<-chan amqp.Delivery, error) {
	ch, err := r.channels.Channel(ctx)
	if err != nil {
		return nil, fmt.Errorf("get channel: %w", err)
	}

	if err = declareDeadLetter(ch); err != nil {
		return nil, err
	}

	for _, binding := range spec.Bindings {
		if err = ch.ExchangeDeclare(binding.Exchange, "topic", true, false, false, false, nil); err != nil {
			return nil, fmt.Errorf("declare exchange %s: %w", binding.Exchange, err)
		}
	}

	if _, err = ch.QueueDeclare(spec.Queue, true, false, false, false, amqp.Table{
		"x-dead-letter-exchange": models.DeadLetterExchange,
	}); err != nil {
		return nil, fmt.Errorf("declare queue %s: %w", spec.Queue, err)
	}

	for _, binding := range spec.Bindings {
		if err = ch.QueueBind(spec.Queue, binding.Key, binding.Exchange, false, nil); err != nil {
			return nil, fmt.Errorf("bind %s to %s/%s: %w", spec.Queue, binding.Exchange, binding.Key, err)
		}
	}

	deliveries, err := ch.Consume(spec.Queue, spec.Queue, false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("consume %s: %w", spec.Queue, err)
	}

	return deliveries, nil
}

func declareDeadLetter(ch rabbitmq.Channel) error {
	if err := ch.ExchangeDeclare(models.DeadLetterExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare dead-letter exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(models.DeadLetterQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare dead-letter queue: %w", err)
	}

	if err := ch.QueueBind(models.DeadLetterQueue, "#", models.DeadLetterExchange, false, nil); err != nil {
		return fmt.Errorf("bind dead-letter queue: %w", err)
	}

	return nil
}

func (r *Runner) consumeLoop(ctx context.Context, spec Spec, deliveries <-chan amqp.Delivery) {
	for {
		select {
		case delivery, ok := <-deliveries:
			if !ok {
				return
			}

			r.processDelivery(ctx, spec.Handler, delivery)
		case <-ctx.Done():
			return
		}
	}
}

// processDelivery is the per-message contract: decode+validate, dedup,
// handle with bounded retry, then ack exactly once. Malformed payloads and
// exhausted handlers are nacked without requeue, which routes them to the
// dead-letter queue.
func (r *Runner) processDelivery(ctx context.Context, handler Handler, delivery amqp.Delivery) {
	const op = "consumers.Runner.processDelivery"

	event, err := handler.Decode(delivery.RoutingKey, delivery.Body)
	if err != nil {
		r.log.Error(op,
			logger.String("consumer", handler.Name()),
			logger.String("routing_key", delivery.RoutingKey),
			logger.String("error", err.Error()),
		)

		r.nack(delivery, false)
		return
	}

	dedupKey := handler.Name() + ":" + event.DedupKey()

	fresh, err := r.dedup.MarkProcessed(ctx, dedupKey)
	if err != nil {
		r.log.Error(op, logger.String("dedup", err.Error()))

		// dedup store outage: requeue rather than risk double-applying
		r.nack(delivery, true)
		return
	}

	if !fresh {
		r.log.InfoContext(ctx, op,
			logger.String("consumer", handler.Name()),
			logger.String("dedup_key", dedupKey),
			logger.String("status", "duplicate dropped"),
		)

		r.ack(delivery)
		return
	}

	if err = r.handleWithRetry(ctx, handler, event); err != nil {
		r.log.Error(op,
			logger.String("consumer", handler.Name()),
			logger.String("dedup_key", dedupKey),
			logger.String("error", err.Error()),
		)

		if releaseErr := r.dedup.Release(ctx, dedupKey); releaseErr != nil {
			r.log.Error(op, logger.String("dedup release", releaseErr.Error()))
		}

		// A message that was still being retried when the runner shut
		// down is not poisoned, so it goes back to the queue instead of
		// the dead letter exchange.
		r.nack(delivery, ctx.Err() != nil)
		return
	}

	r.ack(delivery)
}

func (r *Runner) handleWithRetry(ctx context.Context, handler Handler, event models.Event) error {
	var err error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		if err = handler.Handle(ctx, event); err == nil {
			return nil
		}

		if attempt == r.maxAttempts {
			break
		}

		select {
		case <-time.After(time.Duration(attempt) * r.retryBackoff):
		case <-ctx.Done():
			return err
		}
	}

	return fmt.Errorf("after %d attempts: %w", r.maxAttempts, err)
}

func (r *Runner) ack(delivery amqp.Delivery) {
	if err := delivery.Ack(false); err != nil {
		r.log.Error("consumers.Runner.ack", logger.String("error", err.Error()))
	}
}

func (r *Runner) nack(delivery amqp.Delivery, requeue bool) {
	if err := delivery.Nack(false, requeue); err != nil {
		r.log.Error("consumers.Runner.nack", logger.String("error", err.Error()))
	}
}
