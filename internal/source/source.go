// Package source contains the data-access tiers for the booking API.
// Each tier implements the Source interface: Remote talks to a configured
// backend over HTTP, Static serves a bundled JSON document and simulates
// the write operations. No fallback policy lives here — the service layer
// decides which tier answers a given call.
package source

import (
	"context"

	"github.com/roamly/booking-api/internal/domain"
)

// Source defines the four data operations the booking frontend needs.
// The service layer depends on this interface, not on a concrete tier,
// which allows each tier to be unit-tested in isolation.
type Source interface {
	// ListExperiences returns all experience listings, without slot data.
	ListExperiences(ctx context.Context) ([]domain.Experience, error)

	// GetExperienceDetail returns a single experience with its slots.
	// Returns domain.ErrNotFound if no experience with that id exists.
	GetExperienceDetail(ctx context.Context, id string) (domain.ExperienceDetail, error)

	// CreateBooking submits a booking request and returns the outcome.
	CreateBooking(ctx context.Context, req domain.BookingRequest) (domain.BookingResponse, error)

	// ValidatePromoCode checks a promo code against the given subtotal.
	// A rejected code is a structured failure, not an error.
	ValidatePromoCode(ctx context.Context, code string, subtotal float64) (domain.PromoValidation, error)
}
