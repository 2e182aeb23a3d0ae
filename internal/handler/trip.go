package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/itinerary-planner/internal/domain"
)

// CreateTripRequest is the body of POST /trips.
type CreateTripRequest struct {
	Name        string             `json:"name"`
	Destination string             `json:"destination"`
	StartDate   openapi_types.Date `json:"startDate"`
	EndDate     openapi_types.Date `json:"endDate"`
	Description string             `json:"description,omitempty"`
	ImageURL    string             `json:"imageUrl,omitempty"`
}

// UpdateTripRequest is the body of PATCH /trips/{tripID}. Absent fields keep
// their stored value.
type UpdateTripRequest struct {
	Name        *string             `json:"name,omitempty"`
	Destination *string             `json:"destination,omitempty"`
	StartDate   *openapi_types.Date `json:"startDate,omitempty"`
	EndDate     *openapi_types.Date `json:"endDate,omitempty"`
	Description *string             `json:"description,omitempty"`
	ImageURL    *string             `json:"imageUrl,omitempty"`
}

// TripList is the body of GET /trips.
type TripList struct {
	Data       []domain.Trip `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

// Pagination describes the page returned in a list response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	page, ok := queryInt(w, r, "page")
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	params := domain.NewPaginationParams(page, limit)
	trips, total := s.Trips.ListPaged(r.Context(), params)
	writeJSON(w, http.StatusOK, TripList{
		Data:       trips,
		Pagination: Pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req CreateTripRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	trip := domain.Trip{
		Name:        req.Name,
		Destination: req.Destination,
		StartDate:   formatDate(req.StartDate),
		EndDate:     formatDate(req.EndDate),
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := validateTrip(trip); err != nil {
		writeValidation(w, err)
		return
	}

	created, err := s.Trips.Create(r.Context(), trip)
	if err != nil {
		s.respondError(w, r, "trip", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.Trips.GetByID(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		s.respondError(w, r, "trip", err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// UpdateTrip handles PATCH /trips/{tripID}. The merged trip is validated
// before anything is written.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tripID")
	var req UpdateTripRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	patch := domain.TripPatch{
		Name:        req.Name,
		Destination: req.Destination,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if req.StartDate != nil {
		d := formatDate(*req.StartDate)
		patch.StartDate = &d
	}
	if req.EndDate != nil {
		d := formatDate(*req.EndDate)
		patch.EndDate = &d
	}

	current, err := s.Trips.GetByID(r.Context(), id)
	if err != nil {
		s.respondError(w, r, "trip", err)
		return
	}
	if err := validateTrip(patch.Apply(current)); err != nil {
		writeValidation(w, err)
		return
	}

	updated, err := s.Trips.Update(r.Context(), id, patch)
	if err != nil {
		s.respondError(w, r, "trip", err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteTrip handles DELETE /trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.Trips.Delete(r.Context(), chi.URLParam(r, "tripID")); err != nil {
		s.respondError(w, r, "trip", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- helpers ----------------------------------------------------------------

// formatDate renders a request date in the stored layout. The zero date
// becomes "" so that required-field validation catches it.
func formatDate(d openapi_types.Date) string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Format(domain.DateLayout)
}

// queryInt parses an optional integer query parameter. It writes a 400 and
// returns false when the value is present but not an integer.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (*int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, name+" must be an integer")
		return nil, false
	}
	return &n, true
}
