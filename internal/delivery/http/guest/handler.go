package guest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopworks/storefront/fulfillment_service/internal/domain/models"
	internalErrors "github.com/shopworks/storefront/fulfillment_service/internal/lib/errors"
	httpresponse "github.com/shopworks/storefront/fulfillment_service/internal/lib/http"
	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

type sessionStore interface {
	AddCart(ctx context.Context, guestID string, cart models.Cart) (string, error)
	Cart(ctx context.Context, guestID string) (models.Cart, error)
	UpdateCart(ctx context.Context, guestID string, cart models.Cart) error
	DeleteCart(ctx context.Context, guestID string) error

	AddAddress(ctx context.Context, guestID string, address models.Address) (models.Address, error)
	Addresses(ctx context.Context, guestID string) ([]models.Address, error)
	UpdateAddress(ctx context.Context, guestID string, address models.Address) error
	DeleteAddress(ctx context.Context, guestID, addressID string) error

	Info(ctx context.Context, guestID string) (models.GuestInfo, error)
	UpdateInfo(ctx context.Context, guestID string, fields map[string]string) error
}

type Handler struct {
	log logger.Logger

	sessions sessionStore
}

func NewHandler(log logger.Logger, sessions sessionStore) *Handler {
	return &Handler{
		log:      log,
		sessions: sessions,
	}
}

type addCartRequest struct {
	GuestID string      `json:"guestId"`
	Cart    models.Cart `json:"cart"`
}

func (h *Handler) AddCart(w http.ResponseWriter, r *http.Request) {
	var request addCartRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	guestID, err := h.sessions.AddCart(r.Context(), request.GuestID, request.Cart)
	if err != nil {
		h.log.Error("failed to add cart", logger.String("error", err.Error()))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, httpresponse.H{"guestId": guestID})
}

func (h *Handler) Cart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.sessions.Cart(r.Context(), chi.URLParam(r, "guestID"))
	if err != nil {
		h.notFoundOrInternal(w, err, internalErrors.ErrCartNotFound)
		return
	}

	h.writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) UpdateCart(w http.ResponseWriter, r *http.Request) {
	var cart models.Cart

	if err := json.NewDecoder(r.Body).Decode(&cart); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.sessions.UpdateCart(r.Context(), chi.URLParam(r, "guestID"), cart); err != nil {
		h.log.Error("failed to update cart", logger.String("error", err.Error()))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.DeleteCart(r.Context(), chi.URLParam(r, "guestID")); err != nil {
		h.log.Error("failed to delete cart", logger.String("error", err.Error()))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddAddress(w http.ResponseWriter, r *http.Request) {
	var address models.Address

	if err := json.NewDecoder(r.Body).Decode(&address); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	saved, err := h.sessions.AddAddress(r.Context(), chi.URLParam(r, "guestID"), address)
	if err != nil {
		h.log.Error("failed to add address", logger.String("error", err.Error()))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusCreated, saved)
}

func (h *Handler) Addresses(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.sessions.Addresses(r.Context(), chi.URLParam(r, "guestID"))
	if err != nil {
		h.log.Error("failed to list addresses", logger.String("error", err.Error()))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, addresses)
}

func (h *Handler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	var address models.Address

	if err := json.NewDecoder(r.Body).Decode(&address); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	address.ID = chi.URLParam(r, "addressID")

	if err := h.sessions.UpdateAddress(r.Context(), chi.URLParam(r, "guestID"), address); err != nil {
		h.notFoundOrInternal(w, err, internalErrors.ErrAddressNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	err := h.sessions.DeleteAddress(r.Context(), chi.URLParam(r, "guestID"), chi.URLParam(r, "addressID"))
	if err != nil {
		h.notFoundOrInternal(w, err, internalErrors.ErrAddressNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	info, err := h.sessions.Info(r.Context(), chi.URLParam(r, "guestID"))
	if err != nil {
		h.notFoundOrInternal(w, err, internalErrors.ErrGuestNotFound)
		return
	}

	h.writeJSON(w, http.StatusOK, info)
}

func (h *Handler) UpdateInfo(w http.ResponseWriter, r *http.Request) {
	var fields map[string]string

	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.sessions.UpdateInfo(r.Context(), chi.URLParam(r, "guestID"), fields); err != nil {
		h.log.Error("failed to update info", logger.String("error", err.Error()))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Error("failed to encode response", logger.String("error", err.Error()))
	}
}

func (h *Handler) notFoundOrInternal(w http.ResponseWriter, err, sentinel error) {
	if errors.Is(err, sentinel) {
		http.Error(w, sentinel.Error(), http.StatusNotFound)
		return
	}

	h.log.Error("guest session error", logger.String("error", err.Error()))
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
