package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestOrderCreatedEventValidate(t *testing.T) {
	tCases := []struct {
		name  string
		input *OrderCreatedEvent
	}{
		{
			name: "registered_user",
			input: &OrderCreatedEvent{
				EventID:   NewEventID(),
				OrderCode: "ORD-1A2B3C4D",
				UserID:    uuid.New().String(),
				Products: []OrderLine{
					{ProductID: uuid.New().String(), Quantity: 2},
				},
				LoyaltyPointsEarned: 30,
				LoyaltyPointsUsed:   10,
			},
		},
		{
			name: "guest_with_variant",
			input: &OrderCreatedEvent{
				EventID:   NewEventID(),
				OrderCode: "ORD-5E6F7A8B",
				IsGuest:   true,
				UserID:    uuid.New().String(),
				Products: []OrderLine{
					{ProductID: uuid.New().String(), VariantID: uuid.New().String(), Quantity: 1},
				},
				DiscountInfo: &DiscountInfo{Code: "SUMMER10"},
			},
		},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			require.NoError(t, tCase.input.Validate())
		})
	}
}

func TestOrderCreatedEventValidateError(t *testing.T) {
	tCases := []struct {
		name   string
		input  *OrderCreatedEvent
		expErr error
	}{
		{
			name:   "no_order_code",
			input:  &OrderCreatedEvent{UserID: uuid.New().String()},
			expErr: errEmptyOrderCode,
		},
		{
			name:   "no_user_id",
			input:  &OrderCreatedEvent{OrderCode: "ORD-1A2B3C4D"},
			expErr: errEmptyUserID,
		},
		{
			name: "no_products",
			input: &OrderCreatedEvent{
				OrderCode: "ORD-1A2B3C4D",
				UserID:    uuid.New().String(),
			},
			expErr: errEmptyProducts,
		},
		{
			name: "zero_quantity",
			input: &OrderCreatedEvent{
				OrderCode: "ORD-1A2B3C4D",
				UserID:    uuid.New().String(),
				Products:  []OrderLine{{ProductID: uuid.New().String(), Quantity: 0}},
			},
			expErr: errInvalidLine,
		},
		{
			name: "negative_points",
			input: &OrderCreatedEvent{
				OrderCode:           "ORD-1A2B3C4D",
				UserID:              uuid.New().String(),
				Products:            []OrderLine{{ProductID: uuid.New().String(), Quantity: 1}},
				LoyaltyPointsEarned: -5,
			},
			expErr: errNegativePoints,
		},
		{
			name: "used_exceeds_earned",
			input: &OrderCreatedEvent{
				OrderCode:           "ORD-1A2B3C4D",
				UserID:              uuid.New().String(),
				Products:            []OrderLine{{ProductID: uuid.New().String(), Quantity: 1}},
				LoyaltyPointsEarned: 10,
				LoyaltyPointsUsed:   25,
			},
			expErr: errNegativeCredit,
		},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			err := tCase.input.Validate()
			require.Error(t, err)
			require.EqualError(t, tCase.expErr, err.Error())
		})
	}
}

func TestNetPoints(t *testing.T) {
	event := &OrderCreatedEvent{LoyaltyPointsEarned: 30, LoyaltyPointsUsed: 12}
	require.Equal(t, 18, event.NetPoints())
}

func TestDecodeEvent(t *testing.T) {
	tCases := []struct {
		name       string
		routingKey string
		body       string
		check      func(t *testing.T, event Event)
	}{
		{
			name:       "order_created",
			routingKey: RouteOrderCreated,
			body: `{
				"eventId": "e1",
				"orderCode": "ORD-1A2B3C4D",
				"isGuest": true,
				"userId": "guest-1",
				"products": [{"productId": "p1", "quantity": 3}],
				"loyaltyPointsEarned": 15
			}`,
			check: func(t *testing.T, event Event) {
				order, ok := event.(*OrderCreatedEvent)
				require.True(t, ok)
				require.Equal(t, "ORD-1A2B3C4D", order.OrderCode)
				require.True(t, order.IsGuest)
				require.Len(t, order.Products, 1)
				require.Equal(t, 3, order.Products[0].Quantity)
				require.Equal(t, "ORD-1A2B3C4D", order.DedupKey())
			},
		},
		{
			name:       "order_converter",
			routingKey: RouteOrderConverter,
			body:       `{"eventId": "e2", "oldUserId": "guest-1", "newUserId": "user-1"}`,
			check: func(t *testing.T, event Event) {
				conv, ok := event.(*OrderConverterEvent)
				require.True(t, ok)
				require.Equal(t, "guest-1:user-1", conv.DedupKey())
			},
		},
		{
			name:       "user_registered",
			routingKey: RouteUserRegistered,
			body:       `{"eventId": "e3", "user": {"id": "user-1", "email": "a@b.c"}, "oldUserId": "guest-1"}`,
			check: func(t *testing.T, event Event) {
				reg, ok := event.(*UserRegisteredEvent)
				require.True(t, ok)
				require.Equal(t, "guest-1", reg.DedupKey())
			},
		},
		{
			name:       "user_created",
			routingKey: RouteUserCreated,
			body:       `{"eventId": "e4", "user": {"id": "user-1", "email": "a@b.c"}, "password": "s3cret"}`,
			check: func(t *testing.T, event Event) {
				created, ok := event.(*UserCreatedEvent)
				require.True(t, ok)
				require.Equal(t, "user-1", created.DedupKey())
			},
		},
		{
			name:       "user_recovery",
			routingKey: RouteUserRecovery,
			body:       `{"eventId": "e5", "user": {"id": "user-1", "email": "a@b.c"}, "password": "tmp"}`,
			check: func(t *testing.T, event Event) {
				require.Equal(t, "e5", event.DedupKey())
			},
		},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			event, err := DecodeEvent(tCase.routingKey, []byte(tCase.body))
			require.NoError(t, err)
			require.Equal(t, tCase.routingKey, event.RoutingKey())
			tCase.check(t, event)
		})
	}
}

func TestDecodeEventError(t *testing.T) {
	tCases := []struct {
		name       string
		routingKey string
		body       string
		expErr     error
	}{
		{
			name:       "unknown_routing_key",
			routingKey: "order.deleted",
			body:       `{}`,
			expErr:     ErrUnknownRoutingKey,
		},
		{
			name:       "malformed_json",
			routingKey: RouteOrderCreated,
			body:       `{"orderCode":`,
		},
		{
			name:       "invalid_payload",
			routingKey: RouteOrderCreated,
			body:       `{"eventId": "e1", "orderCode": "ORD-1A2B3C4D", "userId": "u1", "products": []}`,
			expErr:     errEmptyProducts,
		},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			event, err := DecodeEvent(tCase.routingKey, []byte(tCase.body))
			require.Error(t, err)
			require.Nil(t, event)
			if tCase.expErr != nil {
				require.ErrorIs(t, err, tCase.expErr)
			}
		})
	}
}
