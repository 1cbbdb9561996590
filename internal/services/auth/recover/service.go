package recover

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/shopworks/storefront/fulfillment_service/internal/domain/models"
	"github.com/shopworks/storefront/fulfillment_service/internal/lib/random"
	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

type userGetter interface {
	UserByEmail(ctx context.Context, email string) (*models.User, error)
}

type passwordUpdater interface {
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

type eventPublisher interface {
	PublishToExchange(ctx context.Context, exchange, routingKey string, event models.Event) error
}

// Service resets a forgotten password to a temporary one and publishes the
// recovery email event.
type Service struct {
	log       logger.Logger
	users     userGetter
	passwords passwordUpdater
	events    eventPublisher
}

func New(log logger.Logger, users userGetter, passwords passwordUpdater, events eventPublisher) *Service {
	return &Service{
		log:       log,
		users:     users,
		passwords: passwords,
		events:    events,
	}
}

func (s *Service) Recover(ctx context.Context, email string) error {
	const op = "services.auth.recover.Recover"

	user, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	password := random.Password(6)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%s: hash password: %w", op, err)
	}

	if err = s.passwords.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	payload := models.UserPayload{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	}

	recovery := &models.UserRecoveryEvent{
		EventID:  models.NewEventID(),
		User:     payload,
		Password: password,
	}

	if err = s.events.PublishToExchange(ctx, models.AuthEventsExchange, models.RouteUserRecovery, recovery); err != nil {
		s.log.ErrorContext(ctx, op, logger.String("error", err.Error()))
		return fmt.Errorf("%s: publish %s: %w", op, models.RouteUserRecovery, err)
	}

	changed := &models.PasswordChangedEvent{
		EventID: models.NewEventID(),
		User:    payload,
	}

	// no queue binds auth.password.changed yet; published for future audit
	// consumers, failure is not fatal to the recovery flow
	if err = s.events.PublishToExchange(ctx, models.AuthEventsExchange, models.RoutePasswordChanged, changed); err != nil {
		s.log.WarnContext(ctx, op, logger.String("error", err.Error()))
	}

	s.log.InfoContext(ctx, op, logger.String("user", user.ID))

	return nil
}
