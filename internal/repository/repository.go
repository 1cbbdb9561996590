package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/shopworks/storefront/fulfillment_service/internal/domain/models"
	"github.com/shopworks/storefront/fulfillment_service/internal/repository/discount"
	"github.com/shopworks/storefront/fulfillment_service/internal/repository/inventory"
	"github.com/shopworks/storefront/fulfillment_service/internal/repository/loyalty"
	"github.com/shopworks/storefront/fulfillment_service/internal/repository/order"
	"github.com/shopworks/storefront/fulfillment_service/internal/repository/user"
	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

type StockUpdater interface {
	IncreaseUsed(ctx context.Context, lines []models.OrderLine) error
}

type PointsCrediter interface {
	AddPoints(ctx context.Context, userID string, points int) error
}

type UsageCounter interface {
	IncrementUsedCount(ctx context.Context, code string) error
}

type OrderCreator interface {
	Create(ctx context.Context, order *models.Order) error
}

type OrderReassigner interface {
	ReassignUser(ctx context.Context, oldUserID, newUserID string) error
}

type UserCreator interface {
	Create(ctx context.Context, user *models.User) error
}

type UserGetter interface {
	UserByEmail(ctx context.Context, email string) (*models.User, error)
}

type PasswordUpdater interface {
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

type Repository struct {
	Inventory *inventory.Repository
	Loyalty   *loyalty.Repository
	Discount  *discount.Repository
	Orders    *order.Repository
	Users     *user.Repository
}

func NewRepository(log logger.Logger, db *sqlx.DB) *Repository {
	return &Repository{
		Inventory: inventory.NewRepository(log, db),
		Loyalty:   loyalty.NewRepository(log, db),
		Discount:  discount.NewRepository(log, db),
		Orders:    order.NewRepository(log, db),
		Users:     user.NewRepository(log, db),
	}
}
