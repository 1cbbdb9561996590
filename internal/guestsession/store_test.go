package guestsession

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/shopworks/storefront/fulfillment_service/internal/domain/models"
	internalErrors "github.com/shopworks/storefront/fulfillment_service/internal/lib/errors"
	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewStore(logger.NewSlogLogger(logger.EnvLocal), rdb, DefaultTTL), mr
}

func TestCartLifecycle(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	cart := models.Cart{
		Items: []models.CartItem{
			{ProductID: "p1", Quantity: 2},
		},
		DiscountCode: "SUMMER10",
	}

	guestID, err := store.AddCart(ctx, "", cart)
	require.NoError(t, err)
	require.NotEmpty(t, guestID)

	got, err := store.Cart(ctx, guestID)
	require.NoError(t, err)
	require.Equal(t, cart, got)

	require.Positive(t, mr.TTL(cartKey(guestID)))
	require.Positive(t, mr.TTL(infoKey(guestID)))

	cart.Items[0].Quantity = 5
	require.NoError(t, store.UpdateCart(ctx, guestID, cart))

	got, err = store.Cart(ctx, guestID)
	require.NoError(t, err)
	require.Equal(t, 5, got.Items[0].Quantity)

	require.NoError(t, store.DeleteCart(ctx, guestID))

	_, err = store.Cart(ctx, guestID)
	require.ErrorIs(t, err, internalErrors.ErrCartNotFound)
}

func TestAddCartKeepsGuestID(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	guestID, err := store.AddCart(ctx, "guest-1", models.Cart{})
	require.NoError(t, err)
	require.Equal(t, "guest-1", guestID)
}

func TestAddresses(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first, err := store.AddAddress(ctx, "guest-1", models.Address{
		FullName: "Ada Lovelace",
		Line1:    "12 Analytical Lane",
		City:     "London",
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := store.AddAddress(ctx, "guest-1", models.Address{
		FullName: "Ada Lovelace",
		Line1:    "1 Engine Court",
		City:     "London",
	})
	require.NoError(t, err)

	addresses, err := store.Addresses(ctx, "guest-1")
	require.NoError(t, err)
	require.Len(t, addresses, 2)

	first.City = "Oxford"
	require.NoError(t, store.UpdateAddress(ctx, "guest-1", first))

	info, err := store.Info(ctx, "guest-1")
	require.NoError(t, err)
	require.Len(t, info.Addresses, 2)

	require.NoError(t, store.DeleteAddress(ctx, "guest-1", second.ID))

	addresses, err = store.Addresses(ctx, "guest-1")
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	require.Equal(t, "Oxford", addresses[0].City)
}

func TestAddressesErrors(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	err := store.UpdateAddress(ctx, "guest-1", models.Address{ID: "missing"})
	require.ErrorIs(t, err, internalErrors.ErrAddressNotFound)

	err = store.DeleteAddress(ctx, "guest-1", "missing")
	require.ErrorIs(t, err, internalErrors.ErrAddressNotFound)
}

func TestLoyaltyPointsAccrual(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	points, err := store.LoyaltyPoints(ctx, "guest-1")
	require.NoError(t, err)
	require.Zero(t, points)

	require.NoError(t, store.AddLoyaltyPoints(ctx, "guest-1", 15))
	require.NoError(t, store.AddLoyaltyPoints(ctx, "guest-1", 10))

	points, err = store.LoyaltyPoints(ctx, "guest-1")
	require.NoError(t, err)
	require.Equal(t, 25, points)
}

func TestRecordOrder(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	guestID, err := store.AddCart(ctx, "", models.Cart{
		Items: []models.CartItem{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, store.RecordOrder(ctx, guestID, "ORD-1A2B3C4D", 15))
	require.NoError(t, store.RecordOrder(ctx, guestID, "ORD-5E6F7A8B", 5))

	orders, err := store.Orders(ctx, guestID)
	require.NoError(t, err)
	require.Equal(t, []string{"ORD-1A2B3C4D", "ORD-5E6F7A8B"}, orders)

	points, err := store.LoyaltyPoints(ctx, guestID)
	require.NoError(t, err)
	require.Equal(t, 20, points)

	_, err = store.Cart(ctx, guestID)
	require.ErrorIs(t, err, internalErrors.ErrCartNotFound)
}

func TestUpdateInfo(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.UpdateInfo(ctx, "guest-1", map[string]string{
		"email":     "ada@example.com",
		"full_name": "Ada Lovelace",
	}))

	info, err := store.Info(ctx, "guest-1")
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", info.Fields["email"])
	require.Equal(t, "Ada Lovelace", info.Fields["full_name"])

	err = store.UpdateInfo(ctx, "guest-1", map[string]string{loyaltyPointsField: "999"})
	require.Error(t, err)

	err = store.UpdateInfo(ctx, "guest-1", map[string]string{addressFieldPrefix + "x": "{}"})
	require.Error(t, err)
}

func TestInfoNotFound(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Info(context.Background(), "missing")
	require.ErrorIs(t, err, internalErrors.ErrGuestNotFound)
}

func TestDelete(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	guestID, err := store.AddCart(ctx, "", models.Cart{
		Items: []models.CartItem{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)
	require.NoError(t, store.RecordOrder(ctx, guestID, "ORD-1A2B3C4D", 15))

	require.NoError(t, store.Delete(ctx, guestID))

	require.False(t, mr.Exists(cartKey(guestID)))
	require.False(t, mr.Exists(infoKey(guestID)))
	require.False(t, mr.Exists(ordersKey(guestID)))
}
