// Package service contains the business logic for the booking API.
// Its single service implements the remote-first-with-fallback policy: when a
// backend is configured, each operation tries it once; on configuration
// absence or any remote failure the static tier answers instead. Remote
// failures are logged and swallowed — only the static tier's own failures
// (e.g. not found) reach the caller.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/roamly/booking-api/internal/domain"
	"github.com/roamly/booking-api/internal/source"
)

// ListingCache is the optional cache for the experience listing. A nil
// ListingCache disables caching. Get returns (nil, nil) on a miss.
// The concrete implementation lives in internal/cache.
type ListingCache interface {
	Get(ctx context.Context) ([]domain.Experience, error)
	Set(ctx context.Context, exps []domain.Experience) error
}

// BookingService orchestrates the two data tiers and the optional cache.
type BookingService struct {
	remote source.Source // nil when no backend base URL is configured
	static source.Source
	cache  ListingCache // nil when caching is disabled
	log    *slog.Logger
}

// NewBookingService constructs a BookingService. remote may be nil (demo
// mode: every call uses the static tier); cache may be nil (no caching).
func NewBookingService(remote, static source.Source, cache ListingCache, log *slog.Logger) *BookingService {
	if log == nil {
		log = slog.Default()
	}
	return &BookingService{remote: remote, static: static, cache: cache, log: log}
}

// ListExperiences returns all experience listings. Cache hits short-circuit
// both tiers; cache failures are logged and treated as misses.
func (s *BookingService) ListExperiences(ctx context.Context) ([]domain.Experience, error) {
	if s.cache != nil {
		exps, err := s.cache.Get(ctx)
		if err != nil {
			s.log.WarnContext(ctx, "listing cache read failed", "error", err)
		} else if exps != nil {
			return exps, nil
		}
	}

	if s.remote != nil {
		exps, err := s.remote.ListExperiences(ctx)
		if err == nil {
			s.cacheListing(ctx, exps)
			return exps, nil
		}
		s.log.WarnContext(ctx, "remote listing failed, serving static data", "error", err)
	}

	exps, err := s.static.ListExperiences(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.BookingService.ListExperiences: %w", err)
	}
	s.cacheListing(ctx, exps)
	return exps, nil
}

// GetExperienceDetail returns a single experience with its slots.
// Returns domain.ErrNotFound when neither tier knows the id.
func (s *BookingService) GetExperienceDetail(ctx context.Context, id string) (domain.ExperienceDetail, error) {
	if strings.TrimSpace(id) == "" {
		return domain.ExperienceDetail{}, fmt.Errorf("%w: experience id is required", domain.ErrValidation)
	}

	if s.remote != nil {
		detail, err := s.remote.GetExperienceDetail(ctx, id)
		if err == nil {
			return detail, nil
		}
		s.log.WarnContext(ctx, "remote detail fetch failed, serving static data", "id", id, "error", err)
	}

	detail, err := s.static.GetExperienceDetail(ctx, id)
	if err != nil {
		return domain.ExperienceDetail{}, fmt.Errorf("service.BookingService.GetExperienceDetail: %w", err)
	}
	return detail, nil
}

// CreateBooking validates the request and submits it. The static tier's demo
// bookings always succeed; no availability is checked there.
func (s *BookingService) CreateBooking(ctx context.Context, req domain.BookingRequest) (domain.BookingResponse, error) {
	if err := validateBooking(req); err != nil {
		return domain.BookingResponse{}, err
	}

	if s.remote != nil {
		resp, err := s.remote.CreateBooking(ctx, req)
		if err == nil {
			return resp, nil
		}
		s.log.WarnContext(ctx, "remote booking failed, creating demo booking", "experience_id", req.ExperienceID, "error", err)
	}

	resp, err := s.static.CreateBooking(ctx, req)
	if err != nil {
		return domain.BookingResponse{}, fmt.Errorf("service.BookingService.CreateBooking: %w", err)
	}
	return resp, nil
}

// ValidatePromoCode checks a promo code against the subtotal. An unknown code
// is a structured failure from either tier, never an error.
func (s *BookingService) ValidatePromoCode(ctx context.Context, code string, subtotal float64) (domain.PromoValidation, error) {
	if s.remote != nil {
		v, err := s.remote.ValidatePromoCode(ctx, code, subtotal)
		if err == nil {
			return v, nil
		}
		s.log.WarnContext(ctx, "remote promo validation failed, using demo promo table", "error", err)
	}

	v, err := s.static.ValidatePromoCode(ctx, code, subtotal)
	if err != nil {
		return domain.PromoValidation{}, fmt.Errorf("service.BookingService.ValidatePromoCode: %w", err)
	}
	return v, nil
}

// cacheListing stores the listing if caching is enabled; failures are logged
// and ignored.
func (s *BookingService) cacheListing(ctx context.Context, exps []domain.Experience) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, exps); err != nil {
		s.log.WarnContext(ctx, "listing cache write failed", "error", err)
	}
}

// validateBooking enforces request shape rules common to both tiers.
//   - experienceId, slotId, fullName, and email must be present.
//   - quantity must be at least 1.
func validateBooking(req domain.BookingRequest) error {
	switch {
	case strings.TrimSpace(req.ExperienceID) == "":
		return fmt.Errorf("%w: experienceId is required", domain.ErrValidation)
	case strings.TrimSpace(req.SlotID) == "":
		return fmt.Errorf("%w: slotId is required", domain.ErrValidation)
	case strings.TrimSpace(req.FullName) == "":
		return fmt.Errorf("%w: fullName is required", domain.ErrValidation)
	case strings.TrimSpace(req.Email) == "":
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	case req.Quantity < 1:
		return fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
	}
	return nil
}
