package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/roamly/booking-api/internal/domain"
)

// Remote is the Source implementation backed by the configured booking
// backend. Every method is a single-attempt JSON call; retries and fallback
// are the caller's concern.
type Remote struct {
	baseURL string
	client  *http.Client
}

// NewRemote constructs a Remote against the given base URL
// (scheme + host, with or without a trailing slash).
func NewRemote(baseURL string) *Remote {
	return &Remote{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

// listEnvelope matches the backend's collection response shape.
type listEnvelope struct {
	Data []domain.Experience `json:"data"`
}

// promoRequest is the payload for the promo validation endpoint.
type promoRequest struct {
	Code     string  `json:"code"`
	Subtotal float64 `json:"subtotal"`
}

// ListExperiences calls GET /experiences and returns the data array.
func (r *Remote) ListExperiences(ctx context.Context) ([]domain.Experience, error) {
	var env listEnvelope
	if err := r.getJSON(ctx, "/experiences", &env); err != nil {
		return nil, fmt.Errorf("source.Remote.ListExperiences: %w", err)
	}
	return env.Data, nil
}

// GetExperienceDetail calls GET /experiences/{id}.
func (r *Remote) GetExperienceDetail(ctx context.Context, id string) (domain.ExperienceDetail, error) {
	var detail domain.ExperienceDetail
	if err := r.getJSON(ctx, "/experiences/"+id, &detail); err != nil {
		return domain.ExperienceDetail{}, fmt.Errorf("source.Remote.GetExperienceDetail: %w", err)
	}
	return detail, nil
}

// CreateBooking calls POST /bookings and returns the backend's response body
// verbatim.
func (r *Remote) CreateBooking(ctx context.Context, req domain.BookingRequest) (domain.BookingResponse, error) {
	var resp domain.BookingResponse
	if err := r.postJSON(ctx, "/bookings", req, &resp); err != nil {
		return domain.BookingResponse{}, fmt.Errorf("source.Remote.CreateBooking: %w", err)
	}
	return resp, nil
}

// ValidatePromoCode calls POST /promo/validate with the code and subtotal.
func (r *Remote) ValidatePromoCode(ctx context.Context, code string, subtotal float64) (domain.PromoValidation, error) {
	var resp domain.PromoValidation
	if err := r.postJSON(ctx, "/promo/validate", promoRequest{Code: code, Subtotal: subtotal}, &resp); err != nil {
		return domain.PromoValidation{}, fmt.Errorf("source.Remote.ValidatePromoCode: %w", err)
	}
	return resp, nil
}

// getJSON issues a GET against path and decodes the response into out.
func (r *Remote) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+path, nil)
	if err != nil {
		return err
	}
	return r.do(req, out)
}

// postJSON issues a POST with a JSON-encoded body and decodes the response into out.
func (r *Remote) postJSON(ctx context.Context, path string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return r.do(req, out)
}

// do executes the request, rejects non-2xx statuses, and decodes the body.
func (r *Remote) do(req *http.Request, out any) error {
	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
