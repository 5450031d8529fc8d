package handler_test

import (
	"context"
	"net/http"

	"github.com/roamly/booking-api/internal/domain"
	"github.com/roamly/booking-api/internal/handler"
)

// mockBookingServicer is a test double for handler.BookingServicer.
// Set only the method fields your test needs.
type mockBookingServicer struct {
	listExperiences     func(ctx context.Context) ([]domain.Experience, error)
	getExperienceDetail func(ctx context.Context, id string) (domain.ExperienceDetail, error)
	createBooking       func(ctx context.Context, req domain.BookingRequest) (domain.BookingResponse, error)
	validatePromoCode   func(ctx context.Context, code string, subtotal float64) (domain.PromoValidation, error)
}

func (m *mockBookingServicer) ListExperiences(ctx context.Context) ([]domain.Experience, error) {
	return m.listExperiences(ctx)
}
func (m *mockBookingServicer) GetExperienceDetail(ctx context.Context, id string) (domain.ExperienceDetail, error) {
	return m.getExperienceDetail(ctx, id)
}
func (m *mockBookingServicer) CreateBooking(ctx context.Context, req domain.BookingRequest) (domain.BookingResponse, error) {
	return m.createBooking(ctx, req)
}
func (m *mockBookingServicer) ValidatePromoCode(ctx context.Context, code string, subtotal float64) (domain.PromoValidation, error) {
	return m.validatePromoCode(ctx, code, subtotal)
}

// compile-time check: mockBookingServicer must satisfy handler.BookingServicer.
var _ handler.BookingServicer = (*mockBookingServicer)(nil)

// newHTTPHandler wires a Server with the given mock into the chi router.
// This mirrors exactly how main.go wires it in production.
func newHTTPHandler(svc handler.BookingServicer) http.Handler {
	return handler.NewServer(svc).Router()
}
