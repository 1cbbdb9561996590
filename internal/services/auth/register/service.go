package register

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopworks/storefront/fulfillment_service/internal/domain/models"
	"github.com/shopworks/storefront/fulfillment_service/internal/lib/random"
	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

type userCreator interface {
	Create(ctx context.Context, user *models.User) error
}

type eventPublisher interface {
	PublishToExchange(ctx context.Context, exchange, routingKey string, event models.Event) error
}

type Input struct {
	Email    string
	FullName string
	Password string
	// GuestID, when present, bridges the shopper's guest session into the
	// new account.
	GuestID string
}

// Service creates the user row and publishes the auth events that drive the
// welcome email and, for converting guests, the identity migration.
type Service struct {
	log    logger.Logger
	users  userCreator
	events eventPublisher
}

func New(log logger.Logger, users userCreator, events eventPublisher) *Service {
	return &Service{
		log:    log,
		users:  users,
		events: events,
	}
}

func (s *Service) Register(ctx context.Context, input Input) (*models.User, error) {
	const op = "services.auth.register.Register"

	password := input.Password
	if password == "" {
		password = random.Password(6)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%s: hash password: %w", op, err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: string(hash),
	}

	if err = s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	payload := models.UserPayload{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	}

	created := &models.UserCreatedEvent{
		EventID:  models.NewEventID(),
		User:     payload,
		Password: password,
	}

	if err = s.events.PublishToExchange(ctx, models.AuthEventsExchange, models.RouteUserCreated, created); err != nil {
		s.log.ErrorContext(ctx, op, logger.String("error", err.Error()))
		return nil, fmt.Errorf("%s: publish %s: %w", op, models.RouteUserCreated, err)
	}

	if input.GuestID != "" {
		if err = s.bridgeGuest(ctx, payload, input.GuestID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	s.log.InfoContext(ctx, op, logger.String("user", user.ID))

	return user, nil
}

// bridgeGuest announces the guest conversion: the loyalty consumer merges
// the session's tentative points, the order-id consumer reassigns historical
// orders.
func (s *Service) bridgeGuest(ctx context.Context, user models.UserPayload, guestID string) error {
	registered := &models.UserRegisteredEvent{
		EventID:   models.NewEventID(),
		User:      user,
		OldUserID: guestID,
	}

	if err := s.events.PublishToExchange(ctx, models.AuthEventsExchange, models.RouteUserRegistered, registered); err != nil {
		return fmt.Errorf("publish %s: %w", models.RouteUserRegistered, err)
	}

	converter := &models.OrderConverterEvent{
		EventID:   models.NewEventID(),
		OldUserID: guestID,
		NewUserID: user.ID,
	}

	if err := s.events.PublishToExchange(ctx, models.OrderEventsExchange, models.RouteOrderConverter, converter); err != nil {
		return fmt.Errorf("publish %s: %w", models.RouteOrderConverter, err)
	}

	return nil
}
