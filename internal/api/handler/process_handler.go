package handler

import (
	"log"
	"net/http"

	"labor-planner/internal/model"
	"labor-planner/pkg/router"
)

const processesPrefix = "/processes/"

// ListProcesses retrieves the process catalog
// @Summary List processes
// @Description Get the active processes in registration order
// @Tags processes
// @Produce json
// @Param includeInactive query bool false "Include deactivated processes"
// @Success 200 {array} model.Process "List of processes"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /processes [get]
func (h *Handler) ListProcesses(w http.ResponseWriter, r *http.Request) {
	processes, err := h.Store.ListProcesses(r.Context(), r.URL.Query().Get("includeInactive") == "true")
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if processes == nil {
		processes = []model.Process{}
	}
	writeJSON(w, http.StatusOK, processes)
}

// CreateProcess registers a process
// @Summary Create process
// @Tags processes
// @Accept json
// @Produce json
// @Param process body model.ProcessInput true "Process"
// @Success 201 {object} model.Process
// @Failure 400 {object} ErrorResponse "Invalid request payload"
// @Router /processes [post]
func (h *Handler) CreateProcess(w http.ResponseWriter, r *http.Request) {
	var in model.ProcessInput
	if !decodeJSON(w, r, &in) {
		return
	}
	p, err := h.Store.CreateProcess(r.Context(), in)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	log.Printf("📦 Process %s created (%s, %s)", p.ID, p.Name, p.Type())
	writeJSON(w, http.StatusCreated, p)
}

// GetProcess retrieves one process
// @Summary Get process
// @Tags processes
// @Produce json
// @Param id path string true "Process ID"
// @Success 200 {object} model.Process
// @Failure 404 {object} ErrorResponse "Process not found"
// @Router /processes/{id} [get]
func (h *Handler) GetProcess(w http.ResponseWriter, r *http.Request) {
	id, ok := router.PathParam(r.URL.Path, processesPrefix, "")
	if !ok {
		writeError(w, http.StatusBadRequest, "Process ID is required")
		return
	}
	p, err := h.Store.GetProcess(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// UpdateProcess renames or re-describes a process
// @Summary Update process
// @Tags processes
// @Accept json
// @Produce json
// @Param id path string true "Process ID"
// @Param process body model.ProcessInput true "Process"
// @Success 200 {object} model.Process
// @Failure 400 {object} ErrorResponse "Invalid request payload"
// @Failure 404 {object} ErrorResponse "Process not found"
// @Router /processes/{id} [put]
func (h *Handler) UpdateProcess(w http.ResponseWriter, r *http.Request) {
	id, ok := router.PathParam(r.URL.Path, processesPrefix, "")
	if !ok {
		writeError(w, http.StatusBadRequest, "Process ID is required")
		return
	}
	var in model.ProcessInput
	if !decodeJSON(w, r, &in) {
		return
	}
	p, err := h.Store.UpdateProcess(r.Context(), id, in)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeleteProcess deactivates a process
// @Summary Deactivate process
// @Description Processes are never removed; a deactivated process leaves the calculation catalog
// @Tags processes
// @Param id path string true "Process ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Process not found"
// @Router /processes/{id} [delete]
func (h *Handler) DeleteProcess(w http.ResponseWriter, r *http.Request) {
	id, ok := router.PathParam(r.URL.Path, processesPrefix, "")
	if !ok {
		writeError(w, http.StatusBadRequest, "Process ID is required")
		return
	}
	if err := h.Store.DeactivateProcess(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	log.Printf("🗑️ Process %s deactivated", id)
	w.WriteHeader(http.StatusNoContent)
}
