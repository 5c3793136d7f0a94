package handler

import (
	"net/http"

	"labor-planner/internal/model"
	"labor-planner/pkg/router"
)

const (
	subProcessesPrefix       = "/subProcesses/"
	subProcessesByProcessPfx = "/subProcesses/process/"
)

// ListSubProcesses retrieves the sub-processes of a process
// @Summary List sub-processes
// @Tags subProcesses
// @Produce json
// @Param processId path string true "Process ID"
// @Success 200 {array} model.SubProcess
// @Router /subProcesses/process/{processId} [get]
func (h *Handler) ListSubProcesses(w http.ResponseWriter, r *http.Request) {
	processID, ok := router.PathParam(r.URL.Path, subProcessesByProcessPfx, "")
	if !ok {
		writeError(w, http.StatusBadRequest, "Process ID is required")
		return
	}
	subs, err := h.Store.ListSubProcesses(r.Context(), processID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if subs == nil {
		subs = []model.SubProcess{}
	}
	writeJSON(w, http.StatusOK, subs)
}

// CreateSubProcess registers a sub-process
// @Summary Create sub-process
// @Tags subProcesses
// @Accept json
// @Produce json
// @Param subProcess body model.SubProcessInput true "Sub-process"
// @Success 201 {object} model.SubProcess
// @Failure 400 {object} ErrorResponse "Invalid request payload"
// @Failure 404 {object} ErrorResponse "Process not found"
// @Router /subProcesses [post]
func (h *Handler) CreateSubProcess(w http.ResponseWriter, r *http.Request) {
	var in model.SubProcessInput
	if !decodeJSON(w, r, &in) {
		return
	}
	sub, err := h.Store.CreateSubProcess(r.Context(), in)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

// UpdateSubProcess edits a sub-process
// @Summary Update sub-process
// @Tags subProcesses
// @Accept json
// @Produce json
// @Param id path string true "Sub-process ID"
// @Param subProcess body model.SubProcessInput true "Sub-process"
// @Success 200 {object} model.SubProcess
// @Failure 404 {object} ErrorResponse "Sub-process not found"
// @Router /subProcesses/{id} [put]
func (h *Handler) UpdateSubProcess(w http.ResponseWriter, r *http.Request) {
	id, ok := router.PathParam(r.URL.Path, subProcessesPrefix, "")
	if !ok {
		writeError(w, http.StatusBadRequest, "Sub-process ID is required")
		return
	}
	var in model.SubProcessInput
	if !decodeJSON(w, r, &in) {
		return
	}
	sub, err := h.Store.UpdateSubProcess(r.Context(), id, in)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

// DeleteSubProcess removes a sub-process
// @Summary Delete sub-process
// @Tags subProcesses
// @Param id path string true "Sub-process ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Sub-process not found"
// @Router /subProcesses/{id} [delete]
func (h *Handler) DeleteSubProcess(w http.ResponseWriter, r *http.Request) {
	id, ok := router.PathParam(r.URL.Path, subProcessesPrefix, "")
	if !ok {
		writeError(w, http.StatusBadRequest, "Sub-process ID is required")
		return
	}
	if err := h.Store.DeleteSubProcess(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
