package guestsession

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/shopworks/storefront/fulfillment_service/internal/domain/models"
	internalErrors "github.com/shopworks/storefront/fulfillment_service/internal/lib/errors"
	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

const (
	cartKeyPrefix   = "guest_cart:"
	infoKeyPrefix   = "guest_info:"
	ordersKeyPrefix = "guest_orders:"

	loyaltyPointsField = "loyalty_points"
	addressFieldPrefix = "addr:"

	// DefaultTTL is the sliding guest-session expiry. Every write refreshes
	// it; a session nobody touches for this long is gone, together with any
	// un-migrated points.
	DefaultTTL = 7 * 24 * time.Hour
)

// Store keeps ephemeral guest state in Redis. Loyalty points live in a hash
// counter (HINCRBY) and each address in its own hash field, so concurrent
// writers never clobber each other's updates.
type Store struct {
	log logger.Logger
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(log logger.Logger, rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Store{
		log: log,
		rdb: rdb,
		ttl: ttl,
	}
}

func cartKey(guestID string) string   { return cartKeyPrefix + guestID }
func infoKey(guestID string) string   { return infoKeyPrefix + guestID }
func ordersKey(guestID string) string { return ordersKeyPrefix + guestID }

// AddCart stores the guest's cart blob, allocating a guest id when the caller
// has none yet, and makes sure an info record exists.
func (s *Store) AddCart(ctx context.Context, guestID string, cart models.Cart) (string, error) {
	const op = "guestsession.Store.AddCart"

	if guestID == "" {
		guestID = uuid.NewString()
	}

	data, err := json.Marshal(cart)
	if err != nil {
		return "", fmt.Errorf("%s: marshal cart: %w", op, err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, cartKey(guestID))
	pipe.RPush(ctx, cartKey(guestID), data)
	pipe.HSetNX(ctx, infoKey(guestID), loyaltyPointsField, 0)
	pipe.Expire(ctx, cartKey(guestID), s.ttl)
	pipe.Expire(ctx, infoKey(guestID), s.ttl)

	if _, err = pipe.Exec(ctx); err != nil {
		s.log.ErrorContext(ctx, op, logger.String("error", err.Error()))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return guestID, nil
}

func (s *Store) Cart(ctx context.Context, guestID string) (models.Cart, error) {
	const op = "guestsession.Store.Cart"

	raw, err := s.rdb.LIndex(ctx, cartKey(guestID), 0).Result()
	if errors.Is(err, redis.Nil) {
		return models.Cart{}, internalErrors.ErrCartNotFound
	}
	if err != nil {
		return models.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	var cart models.Cart
	if err = json.Unmarshal([]byte(raw), &cart); err != nil {
		return models.Cart{}, fmt.Errorf("%s: unmarshal cart: %w", op, err)
	}

	return cart, nil
}

// UpdateCart replaces the whole cart blob.
func (s *Store) UpdateCart(ctx context.Context, guestID string, cart models.Cart) error {
	const op = "guestsession.Store.UpdateCart"

	if _, err := s.AddCart(ctx, guestID, cart); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Store) DeleteCart(ctx context.Context, guestID string) error {
	const op = "guestsession.Store.DeleteCart"

	if err := s.rdb.Del(ctx, cartKey(guestID)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Store) AddAddress(ctx context.Context, guestID string, address models.Address) (models.Address, error) {
	const op = "guestsession.Store.AddAddress"

	if address.ID == "" {
		address.ID = uuid.NewString()
	}

	data, err := json.Marshal(address)
	if err != nil {
		return models.Address{}, fmt.Errorf("%s: marshal address: %w", op, err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, infoKey(guestID), addressFieldPrefix+address.ID, data)
	pipe.Expire(ctx, infoKey(guestID), s.ttl)

	if _, err = pipe.Exec(ctx); err != nil {
		return models.Address{}, fmt.Errorf("%s: %w", op, err)
	}

	return address, nil
}

func (s *Store) Addresses(ctx context.Context, guestID string) ([]models.Address, error) {
	const op = "guestsession.Store.Addresses"

	fields, err := s.rdb.HGetAll(ctx, infoKey(guestID)).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	addresses, err := addressesFromFields(fields)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return addresses, nil
}

func (s *Store) UpdateAddress(ctx context.Context, guestID string, address models.Address) error {
	const op = "guestsession.Store.UpdateAddress"

	field := addressFieldPrefix + address.ID

	exists, err := s.rdb.HExists(ctx, infoKey(guestID), field).Result()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return internalErrors.ErrAddressNotFound
	}

	data, err := json.Marshal(address)
	if err != nil {
		return fmt.Errorf("%s: marshal address: %w", op, err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, infoKey(guestID), field, data)
	pipe.Expire(ctx, infoKey(guestID), s.ttl)

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Store) DeleteAddress(ctx context.Context, guestID, addressID string) error {
	const op = "guestsession.Store.DeleteAddress"

	removed, err := s.rdb.HDel(ctx, infoKey(guestID), addressFieldPrefix+addressID).Result()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if removed == 0 {
		return internalErrors.ErrAddressNotFound
	}

	return nil
}

// Info assembles the full guest record from the info hash.
func (s *Store) Info(ctx context.Context, guestID string) (models.GuestInfo, error) {
	const op = "guestsession.Store.Info"

	fields, err := s.rdb.HGetAll(ctx, infoKey(guestID)).Result()
	if err != nil {
		return models.GuestInfo{}, fmt.Errorf("%s: %w", op, err)
	}
	if len(fields) == 0 {
		return models.GuestInfo{}, internalErrors.ErrGuestNotFound
	}

	info := models.GuestInfo{Fields: map[string]string{}}

	for field, value := range fields {
		switch {
		case field == loyaltyPointsField:
			points, convErr := strconv.Atoi(value)
			if convErr != nil {
				return models.GuestInfo{}, fmt.Errorf("%s: parse %s: %w", op, loyaltyPointsField, convErr)
			}
			info.LoyaltyPoints = points
		case strings.HasPrefix(field, addressFieldPrefix):
			var address models.Address
			if unmarshalErr := json.Unmarshal([]byte(value), &address); unmarshalErr != nil {
				return models.GuestInfo{}, fmt.Errorf("%s: unmarshal address: %w", op, unmarshalErr)
			}
			info.Addresses = append(info.Addresses, address)
		default:
			info.Fields[field] = value
		}
	}

	sort.Slice(info.Addresses, func(i, j int) bool {
		return info.Addresses[i].ID < info.Addresses[j].ID
	})

	return info, nil
}

// UpdateInfo sets free-form info fields. Points and addresses have their own
// operations and are rejected here.
func (s *Store) UpdateInfo(ctx context.Context, guestID string, fields map[string]string) error {
	const op = "guestsession.Store.UpdateInfo"

	if len(fields) == 0 {
		return nil
	}

	pairs := make([]any, 0, len(fields)*2)
	for field, value := range fields {
		if field == loyaltyPointsField || strings.HasPrefix(field, addressFieldPrefix) {
			return fmt.Errorf("%s: field %q is reserved", op, field)
		}
		pairs = append(pairs, field, value)
	}

	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, infoKey(guestID), pairs...)
	pipe.Expire(ctx, infoKey(guestID), s.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Store) AddLoyaltyPoints(ctx context.Context, guestID string, points int) error {
	const op = "guestsession.Store.AddLoyaltyPoints"

	pipe := s.rdb.TxPipeline()
	pipe.HIncrBy(ctx, infoKey(guestID), loyaltyPointsField, int64(points))
	pipe.Expire(ctx, infoKey(guestID), s.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// LoyaltyPoints returns the guest's tentative balance; a missing record
// counts as zero.
func (s *Store) LoyaltyPoints(ctx context.Context, guestID string) (int, error) {
	const op = "guestsession.Store.LoyaltyPoints"

	raw, err := s.rdb.HGet(ctx, infoKey(guestID), loyaltyPointsField).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	points, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: parse %s: %w", op, loyaltyPointsField, err)
	}

	return points, nil
}

// RecordOrder accrues a guest order's earned points, remembers the order code
// and clears the cart.
func (s *Store) RecordOrder(ctx context.Context, guestID, orderCode string, points int) error {
	const op = "guestsession.Store.RecordOrder"

	pipe := s.rdb.TxPipeline()
	pipe.HIncrBy(ctx, infoKey(guestID), loyaltyPointsField, int64(points))
	pipe.RPush(ctx, ordersKey(guestID), orderCode)
	pipe.Del(ctx, cartKey(guestID))
	pipe.Expire(ctx, infoKey(guestID), s.ttl)
	pipe.Expire(ctx, ordersKey(guestID), s.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		s.log.ErrorContext(ctx, op, logger.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Store) Orders(ctx context.Context, guestID string) ([]string, error) {
	const op = "guestsession.Store.Orders"

	orders, err := s.rdb.LRange(ctx, ordersKey(guestID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return orders, nil
}

// Delete removes every trace of the guest. The loyalty consumer calls this
// once the points have been merged into a registered account.
func (s *Store) Delete(ctx context.Context, guestID string) error {
	const op = "guestsession.Store.Delete"

	if err := s.rdb.Del(ctx, cartKey(guestID), infoKey(guestID), ordersKey(guestID)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func addressesFromFields(fields map[string]string) ([]models.Address, error) {
	var addresses []models.Address

	for field, value := range fields {
		if !strings.HasPrefix(field, addressFieldPrefix) {
			continue
		}

		var address models.Address
		if err := json.Unmarshal([]byte(value), &address); err != nil {
			return nil, fmt.Errorf("unmarshal address: %w", err)
		}

		addresses = append(addresses, address)
	}

	sort.Slice(addresses, func(i, j int) bool {
		return addresses[i].ID < addresses[j].ID
	})

	return addresses, nil
}
