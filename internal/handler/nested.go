package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/itinerary-planner/internal/domain"
)

// ConflictHeader carries the result of the soft scheduling check on activity writes.
const ConflictHeader = "X-Schedule-Conflict"

type patcher[T any] interface {
	Apply(T) T
}

// nested serves one kind of record stored inside a trip. Request bodies are
// decoded straight into the domain record (create) or its patch (update);
// ids in bodies are ignored.
type nested[T domain.Record, P patcher[T]] struct {
	s        *Server
	what     string
	svc      NestedServicer[T, P]
	validate func(item T, trip domain.Trip) error

	// beforeWrite runs after validation, before the write. excludeID is the
	// id of the item being updated, "" on create.
	beforeWrite func(w http.ResponseWriter, r *http.Request, tripID string, item T, excludeID string)
}

func (n *nested[T, P]) routes(r chi.Router) {
	r.Get("/", n.list)
	n.itemRoutes(r)
}

func (n *nested[T, P]) itemRoutes(r chi.Router) {
	r.Post("/", n.create)
	r.Get("/{itemID}", n.get)
	r.Patch("/{itemID}", n.update)
	r.Delete("/{itemID}", n.delete)
}

// trip loads the trip named in the path, writing a 404 when it is missing.
func (n *nested[T, P]) trip(w http.ResponseWriter, r *http.Request) (domain.Trip, bool) {
	trip, err := n.s.Trips.GetByID(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		n.s.respondError(w, r, "trip", err)
		return domain.Trip{}, false
	}
	return trip, true
}

func (n *nested[T, P]) list(w http.ResponseWriter, r *http.Request) {
	trip, ok := n.trip(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, n.svc.List(r.Context(), trip.ID))
}

func (n *nested[T, P]) get(w http.ResponseWriter, r *http.Request) {
	trip, ok := n.trip(w, r)
	if !ok {
		return
	}
	item, err := n.svc.GetByID(r.Context(), trip.ID, chi.URLParam(r, "itemID"))
	if err != nil {
		n.s.respondError(w, r, n.what, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (n *nested[T, P]) create(w http.ResponseWriter, r *http.Request) {
	trip, ok := n.trip(w, r)
	if !ok {
		return
	}
	var item T
	if !decodeJSON(w, r, &item) {
		return
	}
	if err := n.validate(item, trip); err != nil {
		writeValidation(w, err)
		return
	}
	if n.beforeWrite != nil {
		n.beforeWrite(w, r, trip.ID, item, "")
	}

	created, err := n.svc.Add(r.Context(), trip.ID, item)
	if err != nil {
		n.s.respondError(w, r, "trip", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (n *nested[T, P]) update(w http.ResponseWriter, r *http.Request) {
	trip, ok := n.trip(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "itemID")
	current, err := n.svc.GetByID(r.Context(), trip.ID, id)
	if err != nil {
		n.s.respondError(w, r, n.what, err)
		return
	}
	var patch P
	if !decodeJSON(w, r, &patch) {
		return
	}
	merged := patch.Apply(current)
	if err := n.validate(merged, trip); err != nil {
		writeValidation(w, err)
		return
	}
	if n.beforeWrite != nil {
		n.beforeWrite(w, r, trip.ID, merged, id)
	}

	updated, err := n.svc.Update(r.Context(), trip.ID, id, patch)
	if err != nil {
		n.s.respondError(w, r, n.what, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (n *nested[T, P]) delete(w http.ResponseWriter, r *http.Request) {
	trip, ok := n.trip(w, r)
	if !ok {
		return
	}
	if err := n.svc.Delete(r.Context(), trip.ID, chi.URLParam(r, "itemID")); err != nil {
		n.s.respondError(w, r, n.what, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- flights ----------------------------------------------------------------

func (s *Server) flightRoutes(r chi.Router) {
	n := &nested[domain.Flight, domain.FlightPatch]{
		s:        s,
		what:     "flight",
		svc:      s.Flights,
		validate: validateFlight,
	}
	n.routes(r)
}

// ---- accommodations ---------------------------------------------------------

func (s *Server) accommodationRoutes(r chi.Router) {
	n := &nested[domain.Accommodation, domain.AccommodationPatch]{
		s:        s,
		what:     "accommodation",
		svc:      s.Accommodations,
		validate: validateAccommodation,
	}
	n.routes(r)
}

// ---- activities -------------------------------------------------------------

// ConflictResult is the body of GET /trips/{tripID}/activities/conflicts.
type ConflictResult struct {
	Conflict bool `json:"conflict"`
}

func (s *Server) activityRoutes(r chi.Router) {
	n := &nested[domain.Activity, domain.ActivityPatch]{
		s:    s,
		what: "activity",
		svc:  s.Activities,
		validate: func(a domain.Activity, _ domain.Trip) error {
			return validateActivity(a)
		},
		beforeWrite: func(w http.ResponseWriter, r *http.Request, tripID string, a domain.Activity, excludeID string) {
			conflict := s.Activities.HasSchedulingConflict(r.Context(), tripID, a.Date, a.Time, excludeID)
			w.Header().Set(ConflictHeader, strconv.FormatBool(conflict))
		},
	}
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")
		if date == "" {
			n.list(w, r)
			return
		}
		trip, ok := n.trip(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, s.Activities.ListByDate(r.Context(), trip.ID, date))
	})
	r.Get("/conflicts", func(w http.ResponseWriter, r *http.Request) {
		trip, ok := n.trip(w, r)
		if !ok {
			return
		}
		q := r.URL.Query()
		date, clock := q.Get("date"), q.Get("time")
		if date == "" || clock == "" {
			writeError(w, http.StatusBadRequest, codeBadRequest, "date and time are required")
			return
		}
		conflict := s.Activities.HasSchedulingConflict(r.Context(), trip.ID, date, clock, q.Get("exclude"))
		writeJSON(w, http.StatusOK, ConflictResult{Conflict: conflict})
	})
	n.itemRoutes(r)
}
