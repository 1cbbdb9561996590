package loyalty

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	internalErrors "github.com/shopworks/storefront/fulfillment_service/internal/lib/errors"
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

// AddPoints increases a user's balance by points.
func (r *Repository) AddPoints(ctx context.Context, userID string, points int) error {
	const op = "repository.loyalty.AddPoints"

	const query = `UPDATE "users" SET loyalty_points = loyalty_points + $1 WHERE uuid = $2`

	res, err := r.db.ExecContext(ctx, query, points, userID)
	if err != nil {
		r.log.Error(op, logger.String("error", err.Error()))
		return fmt.Errorf("%s: execute statement: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %q: %w", op, userID, internalErrors.ErrUserNotFound)
	}

	return nil
}
