package fulfillment_http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	authRecover "github.com/shopworks/storefront/fulfillment_service/internal/delivery/http/auth/recover"
	authRegister "github.com/shopworks/storefront/fulfillment_service/internal/delivery/http/auth/register"
	guestHTTP "github.com/shopworks/storefront/fulfillment_service/internal/delivery/http/guest"
	orderCreate "github.com/shopworks/storefront/fulfillment_service/internal/delivery/http/order/create"
	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

type Handler struct {
	log logger.Logger

	orders   *orderCreate.Handler
	register *authRegister.Handler
	recover  *authRecover.Handler
	guests   *guestHTTP.Handler
}

func NewHandler(
	log logger.Logger,
	orders *orderCreate.Handler,
	register *authRegister.Handler,
	recover *authRecover.Handler,
	guests *guestHTTP.Handler,
) *Handler {
	return &Handler{
		log:      log,
		orders:   orders,
		register: register,
		recover:  recover,
		guests:   guests,
	}
}

func (h *Handler) InitRoutes() http.Handler {
	mux := chi.NewRouter()

	mux.Route("/order", func(r chi.Router) {
		r.Post("/", h.orders.Create)
	})

	mux.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register.Register)
		r.Post("/recovery", h.recover.Recover)
	})

	mux.Route("/guest", func(r chi.Router) {
		r.Post("/cart", h.guests.AddCart)

		r.Route("/{guestID}", func(r chi.Router) {
			r.Get("/cart", h.guests.Cart)
			r.Put("/cart", h.guests.UpdateCart)
			r.Delete("/cart", h.guests.DeleteCart)

			r.Post("/addresses", h.guests.AddAddress)
			r.Get("/addresses", h.guests.Addresses)
			r.Put("/addresses/{addressID}", h.guests.UpdateAddress)
			r.Delete("/addresses/{addressID}", h.guests.DeleteAddress)

			r.Get("/info", h.guests.Info)
			r.Patch("/info", h.guests.UpdateInfo)
		})
	})

	return mux
}
