package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/shopworks/storefront/fulfillment_service/internal/domain/models"
	internalErrors "github.com/shopworks/storefront/fulfillment_service/internal/lib/errors"
	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

const uniqueViolation = "23505"

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

func (r *Repository) Create(ctx context.Context, user *models.User) error {
	const op = "repository.user.Create"

	const query = `
		INSERT INTO "users" (uuid, email, full_name, password_hash, loyalty_points)
		VALUES ($1, $2, $3, $4, 0)`

	if _, err := r.db.ExecContext(ctx, query, user.ID, user.Email, user.FullName, user.PasswordHash); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return fmt.Errorf("%s: %q: %w", op, user.Email, internalErrors.ErrEmailTaken)
		}

		r.log.Error(op, logger.String("error", err.Error()))
		return fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return nil
}

func (r *Repository) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "repository.user.UserByEmail"

	const query = `
		SELECT uuid, email, full_name, password_hash, loyalty_points
		FROM "users"
		WHERE email = $1`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internalErrors.ErrUserNotFound
		}

		r.log.Error(op, logger.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}

func (r *Repository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	const op = "repository.user.UpdatePassword"

	const query = `UPDATE "users" SET password_hash = $1 WHERE uuid = $2`

	res, err := r.db.ExecContext(ctx, query, passwordHash, userID)
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
