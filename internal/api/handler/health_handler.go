package handler

import "net/http"

// Health reports liveness and the number of calculations in flight
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"inFlight": h.Guard.InFlight(),
	})
}
