package handler

import "net/http"

// promoRequest is the body of POST /api/promo/validate.
type promoRequest struct {
	Code     string  `json:"code"`
	Subtotal float64 `json:"subtotal"`
}

// ValidatePromo handles POST /api/promo/validate.
// Rejected codes are a 200 with success=false — the frontend renders the
// message inline rather than treating it as a request failure.
func (s *Server) ValidatePromo(w http.ResponseWriter, r *http.Request) {
	var req promoRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	v, err := s.bookings.ValidatePromoCode(r.Context(), req.Code, req.Subtotal)
	if err != nil {
		writeErr(w, r, err, "promo code not found")
		return
	}
	writeJSON(w, http.StatusOK, v)
}
