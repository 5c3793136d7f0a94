package handler

import (
	"net/http"

	"labor-planner/internal/model"
	"labor-planner/pkg/router"
)

const (
	productivityPrefix          = "/productivity/"
	productivityByProcessPrefix = "/productivity/process/"
)

// CreateProductivity registers the productivity profile of a process
// @Summary Create productivity profile
// @Tags productivity
// @Accept json
// @Produce json
// @Param productivity body model.ProductivityInput true "Productivity profile"
// @Success 201 {object} model.ProductivityProfile
// @Failure 400 {object} ErrorResponse "Invalid rates"
// @Failure 404 {object} ErrorResponse "Process not found"
// @Failure 409 {object} ErrorResponse "Process already has a profile"
// @Router /productivity [post]
func (h *Handler) CreateProductivity(w http.ResponseWriter, r *http.Request) {
	var in model.ProductivityInput
	if !decodeJSON(w, r, &in) {
		return
	}
	p, err := h.Store.CreateProductivity(r.Context(), in)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// UpdateProductivity replaces the rates of a profile
// @Summary Update productivity profile
// @Tags productivity
// @Accept json
// @Produce json
// @Param id path string true "Productivity ID"
// @Param productivity body model.ProductivityInput true "Productivity profile"
// @Success 200 {object} model.ProductivityProfile
// @Failure 400 {object} ErrorResponse "Invalid rates"
// @Failure 404 {object} ErrorResponse "Profile not found"
// @Router /productivity/{id} [put]
func (h *Handler) UpdateProductivity(w http.ResponseWriter, r *http.Request) {
	id, ok := router.PathParam(r.URL.Path, productivityPrefix, "")
	if !ok {
		writeError(w, http.StatusBadRequest, "Productivity ID is required")
		return
	}
	var in model.ProductivityInput
	if !decodeJSON(w, r, &in) {
		return
	}
	p, err := h.Store.UpdateProductivity(r.Context(), id, in)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// GetProductivityByProcess retrieves the profile of a process
// @Summary Get productivity profile of a process
// @Tags productivity
// @Produce json
// @Param processId path string true "Process ID"
// @Success 200 {object} model.ProductivityProfile
// @Failure 404 {object} ErrorResponse "No profile for this process"
// @Router /productivity/process/{processId} [get]
func (h *Handler) GetProductivityByProcess(w http.ResponseWriter, r *http.Request) {
	processID, ok := router.PathParam(r.URL.Path, productivityByProcessPrefix, "")
	if !ok {
		writeError(w, http.StatusBadRequest, "Process ID is required")
		return
	}
	p, err := h.Store.GetProductivityByProcess(r.Context(), processID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
