package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"labor-planner/internal/catalog"
	"labor-planner/internal/planning"
	"labor-planner/internal/session"
	"labor-planner/internal/store"
)

// Handler serves the catalog CRUD endpoints and the planning calculation.
type Handler struct {
	Store *store.DB
	// Catalog is read for every calculation; usually a catalog.StoreSource over Store.
	Catalog            catalog.Source
	CatalogConcurrency int
	Corrections        planning.Corrections
	Support            planning.SupportPolicy
	Guard              *session.Guard
}

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Error  string                `json:"error"`
	Fields []planning.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeStoreError maps store sentinels to status codes.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrInvalid):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return false
	}
	return true
}
