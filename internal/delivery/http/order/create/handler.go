package create

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopworks/storefront/fulfillment_service/internal/domain/models"
	httpresponse "github.com/shopworks/storefront/fulfillment_service/internal/lib/http"
	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

type orderPlacer interface {
	Place(ctx context.Context, order *models.Order) (string, error)
}

type Handler struct {
	log logger.Logger

	orderPlacer orderPlacer
}

func NewHandler(log logger.Logger, orderPlacer orderPlacer) *Handler {
	return &Handler{
		log:         log,
		orderPlacer: orderPlacer,
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var request CreateOrderRequest

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

	order := request.ToDTO()

	orderCode, err := h.orderPlacer.Place(r.Context(), &order)
	if err != nil {
		h.log.Error("failed to place order", logger.String("error", err.Error()))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err = json.NewEncoder(w).Encode(
		httpresponse.H{
			"orderCode": orderCode,
		},
	); err != nil {
		h.log.Error("failed to encode response", logger.String("error", err.Error()))
	}
}
