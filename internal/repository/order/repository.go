package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/shopworks/storefront/fulfillment_service/internal/domain/models"
	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

type Repository struct {
	log logger.Logger
	db  *sqlx.DB
}

func NewRepository(log logger.Logger, db *sqlx.DB) *Repository {
	return &Repository{
		log: log,
		db:  db,
	}
}

var ErrNoOrderLines = errors.New("order has no lines")

func (r *Repository) Create(ctx context.Context, order *models.Order) (err error) {
	const op = "repository.order.Create"

	if len(order.Products) == 0 {
		return fmt.Errorf("%s: %w", op, ErrNoOrderLines)
	}

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		r.log.Error(op, logger.String("error", err.Error()))
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer func() {
		if err != nil {
			if rollBackErr := tx.Rollback(); rollBackErr != nil {
				r.log.Error(op, logger.String("error", rollBackErr.Error()))
			}
		}
	}()

	const orderQuery = `
		INSERT INTO "orders"
			(order_code, user_uuid, is_guest, customer_email, discount_code, loyalty_points_earned, loyalty_points_used)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if _, err = tx.ExecContext(ctx, orderQuery,
		order.OrderCode,
		order.UserID,
		order.IsGuest,
		order.CustomerEmail,
		order.DiscountCode,
		order.LoyaltyPointsEarned,
		order.LoyaltyPointsUsed,
	); err != nil {
		r.log.Error(op, logger.String("error", err.Error()))
		return fmt.Errorf("%s: orders execute statement: %w", op, err)
	}

	const linesQuery = `INSERT INTO "order_products" (order_code, product_uuid, variant_uuid, quantity) VALUES %s`

	var values []interface{}
	var placeholders []string

	for i, line := range order.Products {
		values = append(values, order.OrderCode, line.ProductID, line.VariantID, line.Quantity)

		argID := i * 4

		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d)", argID+1, argID+2, argID+3, argID+4))
	}

	fullQuery := fmt.Sprintf(linesQuery, strings.Join(placeholders, ","))

	if _, err = tx.ExecContext(ctx, fullQuery, values...); err != nil {
		r.log.Error(op, logger.String("error", err.Error()))
		return fmt.Errorf("%s: order_products execute statement: %w", op, err)
	}

	return tx.Commit()
}

// ReassignUser moves every order owned by a guest id to the registered user
// who claimed it.
func (r *Repository) ReassignUser(ctx context.Context, oldUserID, newUserID string) error {
	const op = "repository.order.ReassignUser"

	const query = `UPDATE "orders" SET user_uuid = $1, is_guest = FALSE WHERE user_uuid = $2`

	res, err := r.db.ExecContext(ctx, query, newUserID, oldUserID)
	if err != nil {
		r.log.Error(op, logger.String("error", err.Error()))
		return fmt.Errorf("%s: execute statement: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}

	r.log.Info(op,
		logger.String("old_user", oldUserID),
		logger.String("new_user", newUserID),
		logger.Int("orders", int(affected)),
	)

	return nil
}
