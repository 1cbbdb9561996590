package loyalty

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang/mock/gomock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/shopworks/storefront/fulfillment_service/internal/domain/models"
	"github.com/shopworks/storefront/fulfillment_service/internal/guestsession"
	internalErrors "github.com/shopworks/storefront/fulfillment_service/internal/lib/errors"
	"github.com/shopworks/storefront/fulfillment_service/internal/repository/mocks"
	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

func newGuestStore(t *testing.T) *guestsession.Store {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return guestsession.NewStore(logger.NewSlogLogger(logger.EnvLocal), rdb, guestsession.DefaultTTL)
}

func TestCreditOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	balance := mocks.NewMockPointsCrediter(ctrl)
	balance.EXPECT().AddPoints(gomock.Any(), "user-1", 18).Return(nil)

	consumer := New(logger.NewSlogLogger(logger.EnvLocal), balance, newGuestStore(t))

	err := consumer.Handle(context.Background(), &models.OrderCreatedEvent{
		EventID:             models.NewEventID(),
		OrderCode:           "ORD-1A2B3C4D",
		UserID:              "user-1",
		Products:            []models.OrderLine{{ProductID: "p1", Quantity: 1}},
		LoyaltyPointsEarned: 30,
		LoyaltyPointsUsed:   12,
	})
	require.NoError(t, err)
}

func TestCreditOrderSkipsGuests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no AddPoints expectation: a guest order must not touch user balances
	balance := mocks.NewMockPointsCrediter(ctrl)

	consumer := New(logger.NewSlogLogger(logger.EnvLocal), balance, newGuestStore(t))

	err := consumer.Handle(context.Background(), &models.OrderCreatedEvent{
		EventID:             models.NewEventID(),
		OrderCode:           "ORD-1A2B3C4D",
		IsGuest:             true,
		UserID:              "guest-1",
		Products:            []models.OrderLine{{ProductID: "p1", Quantity: 1}},
		LoyaltyPointsEarned: 30,
	})
	require.NoError(t, err)
}

func TestMergeGuest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guests := newGuestStore(t)
	ctx := context.Background()

	require.NoError(t, guests.AddLoyaltyPoints(ctx, "guest-1", 25))

	balance := mocks.NewMockPointsCrediter(ctrl)
	balance.EXPECT().AddPoints(gomock.Any(), "user-1", 25).Return(nil)

	consumer := New(logger.NewSlogLogger(logger.EnvLocal), balance, guests)

	err := consumer.Handle(ctx, &models.UserRegisteredEvent{
		EventID:   models.NewEventID(),
		User:      models.UserPayload{ID: "user-1", Email: "ada@example.com"},
		OldUserID: "guest-1",
	})
	require.NoError(t, err)

	// the guest record is gone, so a replayed merge credits nothing
	_, err = guests.Info(ctx, "guest-1")
	require.ErrorIs(t, err, internalErrors.ErrGuestNotFound)

	err = consumer.Handle(ctx, &models.UserRegisteredEvent{
		EventID:   models.NewEventID(),
		User:      models.UserPayload{ID: "user-1", Email: "ada@example.com"},
		OldUserID: "guest-1",
	})
	require.NoError(t, err)
}

func TestMergeGuestWithoutPoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// zero balance: delete the record without crediting
	balance := mocks.NewMockPointsCrediter(ctrl)

	consumer := New(logger.NewSlogLogger(logger.EnvLocal), balance, newGuestStore(t))

	err := consumer.Handle(context.Background(), &models.UserRegisteredEvent{
		EventID:   models.NewEventID(),
		User:      models.UserPayload{ID: "user-1", Email: "ada@example.com"},
		OldUserID: "guest-1",
	})
	require.NoError(t, err)
}

func TestSpecs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	consumer := New(logger.NewSlogLogger(logger.EnvLocal), mocks.NewMockPointsCrediter(ctrl), newGuestStore(t))

	specs := consumer.Specs()
	require.Len(t, specs, 2)

	require.Equal(t, models.LoyaltyQueue, specs[0].Queue)
	require.Equal(t, models.OrderEventsExchange, specs[0].Bindings[0].Exchange)
	require.Equal(t, models.RouteOrderCreated, specs[0].Bindings[0].Key)

	require.Equal(t, models.LoyaltyAddedQueue, specs[1].Queue)
	require.Equal(t, models.AuthEventsExchange, specs[1].Bindings[0].Exchange)
	require.Equal(t, models.RouteUserRegistered, specs[1].Bindings[0].Key)
}
