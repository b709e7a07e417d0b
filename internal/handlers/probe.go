package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"agelookup/internal/dataset"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	dataset *dataset.File
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(ds *dataset.File) *ProbeHandler {
	return &ProbeHandler{dataset: ds}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if the local dataset can be read.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if err := h.dataset.Check(); err != nil {
		slog.Warn("readiness check failed", "path", h.dataset.Path, "error", err)
		return jsonError(c, fiber.StatusServiceUnavailable, "dataset unavailable")
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
