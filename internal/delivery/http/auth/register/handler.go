package register

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopworks/storefront/fulfillment_service/internal/domain/models"
	internalErrors "github.com/shopworks/storefront/fulfillment_service/internal/lib/errors"
	httpresponse "github.com/shopworks/storefront/fulfillment_service/internal/lib/http"
	registerService "github.com/shopworks/storefront/fulfillment_service/internal/services/auth/register"
	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

type registrar interface {
	Register(ctx context.Context, input registerService.Input) (*models.User, error)
}

type Handler struct {
	log logger.Logger

	registrar registrar
}

func NewHandler(log logger.Logger, registrar registrar) *Handler {
	return &Handler{
		log:       log,
		registrar: registrar,
	}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var request RegisterRequest

	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		h.log.Error("failed to decode request", logger.String("error", err.Error()))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err = request.validate(); err != nil {
		h.log.Error("failed to validate request", logger.String("error", err.Error()))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.registrar.Register(r.Context(), request.ToInput())
	if err != nil {
		if errors.Is(err, internalErrors.ErrEmailTaken) {
			http.Error(w, internalErrors.ErrEmailTaken.Error(), http.StatusConflict)
			return
		}

		h.log.Error("failed to register user", logger.String("error", err.Error()))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err = json.NewEncoder(w).Encode(
		httpresponse.H{
			"id":       user.ID,
			"email":    user.Email,
			"fullName": user.FullName,
		},
	); err != nil {
		h.log.Error("failed to encode response", logger.String("error", err.Error()))
	}
}
