package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/itinerary-planner/internal/domain"
)

// ListHistory handles GET /history. Entries are most recent first.
func (s *Server) ListHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.History.List(r.Context()))
}

// LatestHistory handles GET /history/latest. An empty log is a 404.
func (s *Server) LatestHistory(w http.ResponseWriter, r *http.Request) {
	entry, err := s.History.Latest(r.Context())
	if errors.Is(err, domain.ErrNothingToUndo) {
		writeError(w, http.StatusNotFound, codeNotFound, "history is empty")
		return
	}
	if err != nil {
		s.respondError(w, r, "history entry", err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// DeleteHistoryEntry handles DELETE /history/{entryID}.
func (s *Server) DeleteHistoryEntry(w http.ResponseWriter, r *http.Request) {
	if err := s.History.Remove(r.Context(), chi.URLParam(r, "entryID")); err != nil {
		s.respondError(w, r, "history entry", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Undo handles POST /history/undo and returns the entry that was reversed.
// An empty log is a 409; an entry whose target is gone is a 404 and stays in the log.
func (s *Server) Undo(w http.ResponseWriter, r *http.Request) {
	entry, err := s.History.Undo(r.Context())
	if err != nil {
		s.respondError(w, r, "undo target", err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}
