package handler

import (
	"encoding/csv"
	"net/http"

	"github.com/pkordes/itinerary-planner/internal/domain"
)

// GetExport handles GET /export.
// It returns a flat table with one row per booked item of every trip.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	rows := s.Export.Export(r.Context())

	switch r.URL.Query().Get("format") {
	case "", "json":
		writeJSON(w, http.StatusOK, rows)
	case "csv":
		writeCSV(w, rows)
	default:
		writeError(w, http.StatusBadRequest, codeBadRequest, "format must be json or csv")
	}
}

// writeCSV streams rows as CSV. Write errors after the header is sent are ignored.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.csv"`)
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	_ = cw.Write(domain.ExportHeader)
	for _, r := range rows {
		_ = cw.Write(r.Record())
	}
	cw.Flush()
}
