package api

import (
	"labor-planner/internal/api/handler"
	"labor-planner/pkg/router"

	_ "labor-planner/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

func RegisterRoutes(r *router.Router, h *handler.Handler) {
	r.GET("/health", h.Health)

	r.POST("/labor-planning/calculate", h.Calculate)

	r.GET("/processes", h.ListProcesses)
	r.POST("/processes", h.CreateProcess)
	r.GET("/processes/*", h.GetProcess)
	r.PUT("/processes/*", h.UpdateProcess)
	r.DELETE("/processes/*", h.DeleteProcess)

	// More specific routes first
	r.GET("/subProcesses/process/*", h.ListSubProcesses)
	r.POST("/subProcesses", h.CreateSubProcess)
	r.PUT("/subProcesses/*", h.UpdateSubProcess)
	r.DELETE("/subProcesses/*", h.DeleteSubProcess)

	r.GET("/productivity/process/*", h.GetProductivityByProcess)
	r.POST("/productivity", h.CreateProductivity)
	r.PUT("/productivity/*", h.UpdateProductivity)

	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))))
}
