package handler

import (
	"errors"
	"log"
	"net/http"

	"labor-planner/internal/catalog"
	"labor-planner/internal/client"
	"labor-planner/internal/model"
	"labor-planner/internal/planning"
	"labor-planner/internal/session"

	"github.com/google/uuid"
)

// Calculate computes the recommended headcount for every catalog process
// @Summary Calculate headcount
// @Description Distribute the inbound/outbound volumes over the catalog processes and compute the required and support headcount of each. Processes that cannot be computed are listed in the X-Planning-Issues header.
// @Tags labor-planning
// @Accept json
// @Produce json
// @Param request body model.CalculateRequest true "Planning input"
// @Param X-Session-ID header string false "Planning session"
// @Success 200 {array} model.ResultRow "One row per computed process, in catalog order"
// @Header 200 {string} X-Calculation-ID "Calculation id"
// @Header 200 {string} X-Planning-Issues "processId:code pairs"
// @Failure 400 {object} ErrorResponse "Invalid planning input"
// @Failure 409 {object} ErrorResponse "A calculation is already running for this session"
// @Failure 502 {object} ErrorResponse "Catalog unavailable"
// @Router /labor-planning/calculate [post]
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req model.CalculateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	in, err := planning.ValidateRequest(req, h.Corrections)
	if err != nil {
		var verr *planning.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: planning.ErrValidation.Error(), Fields: verr.Fields})
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if key, ok := session.KeyFromRequest(r); ok {
		release, ok := h.Guard.TryAcquire(key)
		if !ok {
			writeError(w, http.StatusConflict, "A calculation is already running for this session")
			return
		}
		defer release()
	}

	snap, err := catalog.Load(r.Context(), h.Catalog, h.CatalogConcurrency)
	if err != nil {
		log.Printf("❌ Catalog load failed: %v", err)
		writeError(w, http.StatusBadGateway, "Catalog unavailable")
		return
	}

	res := planning.Calculate(in, snap, h.Support)
	calcID := uuid.New().String()
	log.Printf("🧮 Calculation %s: %d processes, %d rows, %d issues", calcID, snap.Len(), len(res.Rows), len(res.Issues))
	for _, issue := range res.Issues {
		log.Printf("⚠️ Calculation %s: %s (%s): %s", calcID, issue.ProcessName, issue.Code, issue.Reason)
	}

	w.Header().Set(client.CalculationIDHeader, calcID)
	if len(res.Issues) > 0 {
		w.Header().Set(client.IssuesHeader, planning.FormatIssues(res.Issues))
	}
	rows := res.Rows
	if rows == nil {
		rows = []model.ResultRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}
