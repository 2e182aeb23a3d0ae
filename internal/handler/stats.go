package handler

import "net/http"

// GetStats handles GET /stats.
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Stats.Stats(r.Context()))
}
