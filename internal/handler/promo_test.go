package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamly/booking-api/internal/domain"
)

// ---- POST /api/promo/validate ----------------------------------------------

func TestValidatePromo_200_ValidCode(t *testing.T) {
	svc := &mockBookingServicer{
		validatePromoCode: func(_ context.Context, code string, subtotal float64) (domain.PromoValidation, error) {
			assert.Equal(t, "SAVE10", code)
			assert.Equal(t, float64(1000), subtotal)
			return domain.PromoValidation{
				Success: true,
				Data:    &domain.PromoData{Code: "SAVE10", Type: domain.PromoPercentage, Value: 10, Discount: 100},
			}, nil
		},
	}

	body := jsonBody(t, map[string]any{"code": "SAVE10", "subtotal": 1000})
	req := httptest.NewRequest(http.MethodPost, "/api/promo/validate", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var v domain.PromoValidation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	assert.True(t, v.Success)
	require.NotNil(t, v.Data)
	assert.Equal(t, float64(100), v.Data.Discount)
}

func TestValidatePromo_200_RejectedCodeIsNotAnError(t *testing.T) {
	svc := &mockBookingServicer{
		validatePromoCode: func(context.Context, string, float64) (domain.PromoValidation, error) {
			return domain.PromoValidation{Success: false, Message: "Invalid promo code"}, nil
		},
	}

	body := jsonBody(t, map[string]any{"code": "bogus", "subtotal": 1000})
	req := httptest.NewRequest(http.MethodPost, "/api/promo/validate", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newHTTPHandler(svc).ServeHTTP(rec, req)

	// the frontend renders the failure inline; it is not an HTTP error
	require.Equal(t, http.StatusOK, rec.Code)

	var v domain.PromoValidation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	assert.False(t, v.Success)
	assert.Equal(t, "Invalid promo code", v.Message)
	assert.Nil(t, v.Data)
}

func TestValidatePromo_422_MalformedBody(t *testing.T) {
	svc := &mockBookingServicer{}

	req := httptest.NewRequest(http.MethodPost, "/api/promo/validate", strings.NewReader("[["))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
