package recover

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	internalErrors "github.com/shopworks/storefront/fulfillment_service/internal/lib/errors"
	httpresponse "github.com/shopworks/storefront/fulfillment_service/internal/lib/http"
	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

var errInvalidEmail = errors.New("a valid email is required")

var validate = validator.New()

type passwordRecoverer interface {
	Recover(ctx context.Context, email string) error
}

type RecoverRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type Handler struct {
	log logger.Logger

	recoverer passwordRecoverer
}

func NewHandler(log logger.Logger, recoverer passwordRecoverer) *Handler {
	return &Handler{
		log:       log,
		recoverer: recoverer,
	}
}

func (h *Handler) Recover(w http.ResponseWriter, r *http.Request) {
	var request RecoverRequest

	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		h.log.Error("failed to decode request", logger.String("error", err.Error()))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err = validate.Struct(&request); err != nil {
		http.Error(w, errInvalidEmail.Error(), http.StatusBadRequest)
		return
	}

	if err = h.recoverer.Recover(r.Context(), request.Email); err != nil {
		// do not leak whether the email exists
		if errors.Is(err, internalErrors.ErrUserNotFound) {
			w.WriteHeader(http.StatusAccepted)
			return
		}

		h.log.Error("failed to recover password", logger.String("error", err.Error()))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)

	if err = json.NewEncoder(w).Encode(httpresponse.H{"status": "recovery email queued"}); err != nil {
		h.log.Error("failed to encode response", logger.String("error", err.Error()))
	}
}
