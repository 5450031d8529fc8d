// Package handler implements the HTTP handlers for the booking API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, experience.go, booking.go, promo.go) but all share the
// same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/roamly/booking-api/internal/domain"
)

// BookingServicer defines the business operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the service layer or the network.
type BookingServicer interface {
	ListExperiences(ctx context.Context) ([]domain.Experience, error)
	GetExperienceDetail(ctx context.Context, id string) (domain.ExperienceDetail, error)
	CreateBooking(ctx context.Context, req domain.BookingRequest) (domain.BookingResponse, error)
	ValidatePromoCode(ctx context.Context, code string, subtotal float64) (domain.PromoValidation, error)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	bookings BookingServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(bookings BookingServicer) *Server {
	return &Server{bookings: bookings}
}

// Router returns the chi router with every API route registered.
// Cross-cutting middleware (logging, CORS, body limits) is applied by the
// caller so tests can exercise routes without it.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/experiences", s.ListExperiences)
		r.Get("/experiences/{id}", s.GetExperience)
		r.Post("/bookings", s.CreateBooking)
		r.Post("/promo/validate", s.ValidatePromo)
	})
	return r
}

// writeJSON encodes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encodeJSON(w, v)
}
