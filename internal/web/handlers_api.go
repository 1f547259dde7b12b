package web

// handlers_api.go exposes the same boundary as the pages for JSON clients:
// query, create, update, delete, and the country list.

import (
	"encoding/json"
	"net/http"

	"profilebook/internal/core"

	"github.com/go-chi/chi/v5"
)

// apiDefaultPageSize is the per_page default for API queries.
const apiDefaultPageSize = 10

// candidate is an inbound record plus the declared media type of an
// optional profile picture (create path only; the picture itself is never
// persisted, so only the type is relevant).
type candidate struct {
	core.Record
	PictureType string `json:"pictureType,omitempty"`
}

// queryResponse is the JSON shape of a view pipeline result.
type queryResponse struct {
	Records    []core.Record `json:"records"`
	TotalCount int           `json:"totalCount"`
	TotalPages int           `json:"totalPages"`
	Page       int           `json:"page"`
}

// handleQueryRecords runs the view pipeline for the query parameters.
// A page past the end yields an empty slice, not an error.
func (s *Server) handleQueryRecords(w http.ResponseWriter, r *http.Request) {
	cfg := s.parseViewConfig(r, apiDefaultPageSize)
	page := s.service.QueryView(cfg)

	writeJSON(w, http.StatusOK, queryResponse{
		Records:    page.Records,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
		Page:       cfg.PageNumber,
	})
}

// handleCreateRecord validates and stores a new record. Validation
// failures come back as a field-to-message map with a 422.
func (s *Server) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	var cand candidate
	if err := json.NewDecoder(r.Body).Decode(&cand); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	stored, fieldErrs, err := s.service.Create(cand.Record, cand.PictureType)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	if !fieldErrs.OK() {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": fieldErrs})
		return
	}

	writeJSON(w, http.StatusCreated, stored)
}

// handleUpdateRecord replaces the record with the given id. The id in the
// body, if any, is ignored. An unknown id is a silent no-op.
func (s *Server) handleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var rec core.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fieldErrs, err := s.service.Update(id, rec)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	if !fieldErrs.OK() {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": fieldErrs})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// handleDeleteRecord removes the record with the given id; unknown ids are
// a no-op, so this always succeeds barring a storage failure.
func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Delete(chi.URLParam(r, "id")); err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleCountries returns the fetched country-name list; empty while the
// fetch is pending or has failed.
func (s *Server) handleCountries(w http.ResponseWriter, r *http.Request) {
	names := s.service.Countries()
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"countries": names})
}
