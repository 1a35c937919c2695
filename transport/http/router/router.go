package router

import (
	"agenda/internal/handlers/appointment"
	"agenda/internal/handlers/auth"
	"agenda/internal/handlers/availability"
	"agenda/internal/handlers/document"
	"agenda/internal/handlers/finance"
	"agenda/internal/handlers/patient"
	"agenda/internal/handlers/session"
	"agenda/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	Availability availability.Handler
	Appointment  appointment.Handler
	Patient      patient.Handler
	Session      session.Handler
	Document     document.Handler
	Finance      finance.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Appointment.Router(routerGroup)
		r.DomainHandlers.Patient.Router(routerGroup)
		r.DomainHandlers.Session.Router(routerGroup)
		r.DomainHandlers.Document.Router(routerGroup)
		r.DomainHandlers.Finance.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
