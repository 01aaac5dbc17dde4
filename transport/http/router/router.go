package router

import (
	"tourdesk/internal/handlers/auth"
	"tourdesk/internal/handlers/booking"
	"tourdesk/internal/handlers/geo"
	"tourdesk/internal/handlers/provider"
	"tourdesk/internal/handlers/tour"
	"tourdesk/internal/handlers/trip"
	"tourdesk/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	User     user.Handler
	Geo      geo.Handler
	Tour     tour.Handler
	Booking  booking.Handler
	Provider provider.Handler
	Trip     trip.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Geo.Router(routerGroup)
		r.DomainHandlers.Tour.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Provider.Router(routerGroup)
		r.DomainHandlers.Trip.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
