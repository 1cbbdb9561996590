package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Exchanges. Both are declared durable with type "topic".
const (
	OrderEventsExchange = "order_events_exchange"
	AuthEventsExchange  = "auth_events_exchange"

	// DeadLetterExchange receives messages a consumer gave up on.
	DeadLetterExchange = "fulfillment_dead_letter_exchange"
	DeadLetterQueue    = "fulfillment_dead_letter_queue"
)

// Routing keys.
const (
	RouteOrderCreated    = "order.created"
	RouteOrderConverter  = "order.converter"
	RouteUserRegistered  = "auth.user.registered"
	RouteUserCreated     = "auth.user.created"
	RouteUserRecovery    = "auth.user.recovery"
	RoutePasswordChanged = "auth.password.changed"
)

// Consumer queues, one durable queue per consumer.
const (
	InventoryQueue    = "inventory_update_queue"
	LoyaltyQueue      = "loyalty_queue"
	LoyaltyAddedQueue = "loyalty_added_queue"
	DiscountQueue     = "discount_queue"
	NotificationQueue = "notification_queue"
	RedisQueue        = "redis_queue"
	OrderIDQueue      = "order_id_queue"
)

var (
	ErrUnknownRoutingKey = errors.New("unknown routing key")

	errEmptyOrderCode = errors.New("orderCode is required")
	errEmptyUserID    = errors.New("userId is required")
	errEmptyProducts  = errors.New("products must not be empty")
	errInvalidLine    = errors.New("order line must have a productId and positive quantity")
	errNegativePoints = errors.New("loyalty points must not be negative")
	errNegativeCredit = errors.New("loyaltyPointsUsed must not exceed loyaltyPointsEarned")
	errEmptyOldUserID = errors.New("oldUserId is required")
	errEmptyNewUserID = errors.New("newUserId is required")
	errIncompleteUser = errors.New("user id and email are required")
	errEmptyPassword  = errors.New("password is required")
)

// Event is one routed message. Payloads are validated at the publisher
// boundary and again after decoding on the consumer side.
type Event interface {
	RoutingKey() string
	DedupKey() string
	Validate() error
}

func NewEventID() string {
	return uuid.NewString()
}

type OrderLine struct {
	ProductID string `json:"productId"`
	VariantID string `json:"variantId,omitempty"`
	Quantity  int    `json:"quantity"`
}

type DiscountInfo struct {
	Code string `json:"code,omitempty"`
}

// OrderCreatedEvent fans out to the inventory, loyalty, discount,
// notification and guest-ledger consumers. For guest orders UserID carries
// the guest id that owns the session record.
type OrderCreatedEvent struct {
	EventID             string        `json:"eventId"`
	OrderCode           string        `json:"orderCode"`
	IsGuest             bool          `json:"isGuest"`
	UserID              string        `json:"userId"`
	CustomerEmail       string        `json:"customerEmail,omitempty"`
	Products            []OrderLine   `json:"products"`
	DiscountInfo        *DiscountInfo `json:"discountInfo,omitempty"`
	LoyaltyPointsEarned int           `json:"loyaltyPointsEarned"`
	LoyaltyPointsUsed   int           `json:"loyaltyPointsUsed"`
}

func (e *OrderCreatedEvent) RoutingKey() string { return RouteOrderCreated }

func (e *OrderCreatedEvent) DedupKey() string { return e.OrderCode }

// NetPoints is the credit applied to the owner's balance.
func (e *OrderCreatedEvent) NetPoints() int {
	return e.LoyaltyPointsEarned - e.LoyaltyPointsUsed
}

func (e *OrderCreatedEvent) Validate() error {
	if e.OrderCode == "" {
		return errEmptyOrderCode
	}
	if e.UserID == "" {
		return errEmptyUserID
	}
	if len(e.Products) == 0 {
		return errEmptyProducts
	}
	for _, line := range e.Products {
		if line.ProductID == "" || line.Quantity <= 0 {
			return errInvalidLine
		}
	}
	if e.LoyaltyPointsEarned < 0 || e.LoyaltyPointsUsed < 0 {
		return errNegativePoints
	}
	if e.NetPoints() < 0 {
		return errNegativeCredit
	}
	return nil
}

// OrderConverterEvent reassigns a guest's historical orders to the user who
// registered with that guest id.
type OrderConverterEvent struct {
	EventID   string `json:"eventId"`
	OldUserID string `json:"oldUserId"`
	NewUserID string `json:"newUserId"`
}

func (e *OrderConverterEvent) RoutingKey() string { return RouteOrderConverter }

func (e *OrderConverterEvent) DedupKey() string { return e.OldUserID + ":" + e.NewUserID }

func (e *OrderConverterEvent) Validate() error {
	if e.OldUserID == "" {
		return errEmptyOldUserID
	}
	if e.NewUserID == "" {
		return errEmptyNewUserID
	}
	return nil
}

// UserPayload is the user subset carried by auth events.
type UserPayload struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

func (u UserPayload) validate() error {
	if u.ID == "" || u.Email == "" {
		return errIncompleteUser
	}
	return nil
}

// UserRegisteredEvent triggers the guest-identity bridge: the loyalty
// consumer merges the guest's tentative points into the new account and
// deletes the guest record.
type UserRegisteredEvent struct {
	EventID   string      `json:"eventId"`
	User      UserPayload `json:"user"`
	OldUserID string      `json:"oldUserId"`
}

func (e *UserRegisteredEvent) RoutingKey() string { return RouteUserRegistered }

func (e *UserRegisteredEvent) DedupKey() string { return e.OldUserID }

func (e *UserRegisteredEvent) Validate() error {
	if err := e.User.validate(); err != nil {
		return err
	}
	if e.OldUserID == "" {
		return errEmptyOldUserID
	}
	return nil
}

// UserCreatedEvent triggers the registration welcome email. Password is the
// generated plaintext included in that email; it never leaves the
// notification path.
type UserCreatedEvent struct {
	EventID  string      `json:"eventId"`
	User     UserPayload `json:"user"`
	Password string      `json:"password"`
}

func (e *UserCreatedEvent) RoutingKey() string { return RouteUserCreated }

func (e *UserCreatedEvent) DedupKey() string { return e.User.ID }

func (e *UserCreatedEvent) Validate() error {
	if err := e.User.validate(); err != nil {
		return err
	}
	if e.Password == "" {
		return errEmptyPassword
	}
	return nil
}

// UserRecoveryEvent triggers the password-recovery email. Recovery can be
// requested repeatedly, so deduplication is per event, not per user.
type UserRecoveryEvent struct {
	EventID  string      `json:"eventId"`
	User     UserPayload `json:"user"`
	Password string      `json:"password"`
}

func (e *UserRecoveryEvent) RoutingKey() string { return RouteUserRecovery }

func (e *UserRecoveryEvent) DedupKey() string { return e.EventID }

func (e *UserRecoveryEvent) Validate() error {
	if err := e.User.validate(); err != nil {
		return err
	}
	if e.Password == "" {
		return errEmptyPassword
	}
	if e.EventID == "" {
		return errors.New("eventId is required")
	}
	return nil
}

// PasswordChangedEvent is published alongside recovery. No queue binds it
// today; it exists for future audit consumers.
type PasswordChangedEvent struct {
	EventID string      `json:"eventId"`
	User    UserPayload `json:"user"`
}

func (e *PasswordChangedEvent) RoutingKey() string { return RoutePasswordChanged }

func (e *PasswordChangedEvent) DedupKey() string { return e.EventID }

func (e *PasswordChangedEvent) Validate() error {
	return e.User.validate()
}

// DecodeEvent unmarshals and validates a message body by its routing key.
func DecodeEvent(routingKey string, body []byte) (Event, error) {
	var event Event

	switch routingKey {
	case RouteOrderCreated:
		event = &OrderCreatedEvent{}
	case RouteOrderConverter:
		event = &OrderConverterEvent{}
	case RouteUserRegistered:
		event = &UserRegisteredEvent{}
	case RouteUserCreated:
		event = &UserCreatedEvent{}
	case RouteUserRecovery:
		event = &UserRecoveryEvent{}
	case RoutePasswordChanged:
		event = &PasswordChangedEvent{}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownRoutingKey, routingKey)
	}

	if err := json.Unmarshal(body, event); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", routingKey, err)
	}

	if err := event.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", routingKey, err)
	}

	return event, nil
}
