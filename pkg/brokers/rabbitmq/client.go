package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

var ErrClientClosed = errors.New("rabbitmq client is closed")

// Channel is the subset of *amqp.Channel the publisher and consumers use.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

var _ Channel = (*amqp.Channel)(nil)

// Client owns the single connection/channel pair shared by the publisher and
// all consumers. A lost connection is re-dialed in the background until
// Shutdown; a lost channel is re-opened on the next Channel call.
type Client struct {
	log            logger.Logger
	url            string
	reconnectDelay time.Duration

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel

	closed    chan struct{}
	closeOnce sync.Once
}

func NewClient(log logger.Logger, url string, reconnectDelay time.Duration) *Client {
	if reconnectDelay <= 0 {
		reconnectDelay = 5 * time.Second
	}

	return &Client{
		log:            log,
		url:            url,
		reconnectDelay: reconnectDelay,
		closed:         make(chan struct{}),
	}
}

// Connect dials the broker, retrying every reconnectDelay until it succeeds,
// the context is done, or the client is shut down. Calling it with a live
// connection is a no-op.
func (c *Client) Connect(ctx context.Context) error {
	const op = "brokers.rabbitmq.Client.Connect"

	for {
		err := c.connectOnce()
		if err == nil {
			return nil
		}

		c.log.Error(op, logger.String("error", err.Error()))

		select {
		case <-time.After(c.reconnectDelay):
		case <-ctx.Done():
			return ctx.Err()
		case <-c.closed:
			return ErrClientClosed
		}
	}
}

func (c *Client) connectOnce() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case <-c.closed:
		return ErrClientClosed
	default:
	}

	if c.conn != nil && !c.conn.IsClosed() {
		return nil
	}

	conn, err := amqp.Dial(c.url)
	if err != nil {
		return err
	}

	c.conn = conn
	c.ch = nil

	go c.watchConnection(conn)

	c.log.Info("rabbitmq connected", logger.String("url", c.url))

	return nil
}

// Channel returns the shared channel, connecting and/or re-opening it first
// when needed. The context bounds how long a disconnected client keeps
// retrying the dial.
func (c *Client) Channel(ctx context.Context) (Channel, error) {
	const op = "brokers.rabbitmq.Client.Channel"

	c.mu.Lock()
	if c.ch != nil {
		ch := c.ch
		c.mu.Unlock()
		return ch, nil
	}
	needConnect := c.conn == nil || c.conn.IsClosed()
	c.mu.Unlock()

	if needConnect {
		if err := c.Connect(ctx); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ch != nil {
		return c.ch, nil
	}

	if c.conn == nil || c.conn.IsClosed() {
		return nil, fmt.Errorf("%s: connection is not available", op)
	}

	ch, err := c.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: open channel: %w", op, err)
	}

	c.ch = ch

	go c.watchChannel(ch)

	c.log.Info("rabbitmq channel opened")

	return ch, nil
}

// watchConnection drops the cached connection and channel when the broker
// closes the connection, then re-dials in the background.
func (c *Client) watchConnection(conn *amqp.Connection) {
	const op = "brokers.rabbitmq.Client.watchConnection"

	amqpErr, ok := <-conn.NotifyClose(make(chan *amqp.Error, 1))
	if !ok || amqpErr == nil {
		// graceful close via Shutdown
		return
	}

	c.log.Warn(op, logger.String("connection closed", amqpErr.Error()))

	c.mu.Lock()
	if c.conn == conn {
		c.conn = nil
		c.ch = nil
	}
	c.mu.Unlock()

	select {
	case <-time.After(c.reconnectDelay):
	case <-c.closed:
		return
	}

	if err := c.Connect(context.Background()); err != nil {
		c.log.Error(op, logger.String("reconnect", err.Error()))
	}
}

// watchChannel drops only the cached channel; the next Channel call
// re-creates it on the preserved connection.
func (c *Client) watchChannel(ch *amqp.Channel) {
	const op = "brokers.rabbitmq.Client.watchChannel"

	amqpErr, ok := <-ch.NotifyClose(make(chan *amqp.Error, 1))
	if !ok || amqpErr == nil {
		return
	}

	c.log.Warn(op, logger.String("channel closed", amqpErr.Error()))

	c.mu.Lock()
	if c.ch == ch {
		c.ch = nil
	}
	c.mu.Unlock()
}

func (c *Client) Shutdown() error {
	c.closeOnce.Do(func() {
		close(c.closed)
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	var err error

	if c.ch != nil {
		err = c.ch.Close()
		c.ch = nil
	}

	if c.conn != nil {
		if closeErr := c.conn.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
		c.conn = nil
	}

	c.log.Info("rabbitmq client closed")

	return err
}
