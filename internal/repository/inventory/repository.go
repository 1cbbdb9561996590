package inventory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/shopworks/storefront/fulfillment_service/internal/domain/models"
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

// IncreaseUsed bumps the used counter of every line's variant inside one
// transaction, so a failing line leaves the other counters untouched.
func (r *Repository) IncreaseUsed(ctx context.Context, lines []models.OrderLine) (err error) {
	const op = "repository.inventory.IncreaseUsed"

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
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

	const variantQuery = `UPDATE "product_variants" SET used = used + $1 WHERE uuid = $2`
	const productQuery = `UPDATE "products" SET used = used + $1 WHERE uuid = $2`

	for _, line := range lines {
		query, id := variantQuery, line.VariantID
		if line.VariantID == "" {
			query, id = productQuery, line.ProductID
		}

		res, execErr := tx.ExecContext(ctx, query, line.Quantity, id)
		if execErr != nil {
			err = fmt.Errorf("%s: execute statement: %w", op, execErr)
			r.log.Error(op, logger.String("error", execErr.Error()))
			return err
		}

		affected, affErr := res.RowsAffected()
		if affErr != nil {
			err = fmt.Errorf("%s: rows affected: %w", op, affErr)
			return err
		}
		if affected == 0 {
			err = fmt.Errorf("%s: %q: %w", op, id, internalErrors.ErrVariantNotFound)
			return err
		}
	}

	return tx.Commit()
}
