package handler

import (
	"net/http"

	"github.com/roamly/booking-api/internal/domain"
)

// CreateBooking handles POST /api/bookings.
// Malformed bodies are rejected with 422 before reaching the service; a
// structured BookingResponse comes back with 201 regardless of which data
// tier produced it.
func (s *Server) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req domain.BookingRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	resp, err := s.bookings.CreateBooking(r.Context(), req)
	if err != nil {
		writeErr(w, r, err, "experience not found")
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}
