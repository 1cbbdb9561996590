package discount

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

// IncrementUsedCount bumps the monotonically growing usage counter of a
// discount code. Usage limits, if any, are enforced on the order path.
func (r *Repository) IncrementUsedCount(ctx context.Context, code string) error {
	const op = "repository.discount.IncrementUsedCount"

	const query = `UPDATE "discounts" SET used_count = used_count + 1 WHERE code = $1`

	res, err := r.db.ExecContext(ctx, query, code)
	if err != nil {
		r.log.Error(op, logger.String("error", err.Error()))
		return fmt.Errorf("%s: execute statement: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %q: %w", op, code, internalErrors.ErrDiscountNotFound)
	}

	return nil
}
