package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/roamly/booking-api/internal/domain"
)

// listResponse wraps the experience collection in the same data envelope the
// remote backend uses, so the frontend can point at either without changes.
type listResponse struct {
	Data []domain.Experience `json:"data"`
}

// ListExperiences handles GET /api/experiences.
func (s *Server) ListExperiences(w http.ResponseWriter, r *http.Request) {
	exps, err := s.bookings.ListExperiences(r.Context())
	if err != nil {
		writeErr(w, r, err, "experiences not available")
		return
	}
	if exps == nil {
		exps = []domain.Experience{}
	}
	writeJSON(w, http.StatusOK, listResponse{Data: exps})
}

// GetExperience handles GET /api/experiences/{id}.
func (s *Server) GetExperience(w http.ResponseWriter, r *http.Request) {
	detail, err := s.bookings.GetExperienceDetail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, err, "experience not found")
		return
	}
	writeJSON(w, http.StatusOK, detail)
}
