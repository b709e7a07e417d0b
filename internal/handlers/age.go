package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"agelookup/internal/models"
	"agelookup/internal/resolver"
	"agelookup/internal/tracker"
	"agelookup/internal/validation"
)

// AgeHandler serves name lookups and request statistics.
type AgeHandler struct {
	resolver *resolver.Resolver
	tracker  *tracker.Tracker
}

// NewAgeHandler creates a new age handler.
func NewAgeHandler(r *resolver.Resolver, t *tracker.Tracker) *AgeHandler {
	return &AgeHandler{resolver: r, tracker: t}
}

// Lookup resolves ?name= to an age. The request is counted even when the
// remote fallback fails, in which case the response is a bare 400.
func (h *AgeHandler) Lookup(c fiber.Ctx) error {
	name := validation.NameOrDefault(c.Query("name"))

	if _, err := h.tracker.Increment(name); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := h.resolver.Resolve(c.Context(), name)
	if err != nil {
		slog.Info("age lookup failed", "name", name, "error", err)
		return c.Status(fiber.StatusBadRequest).Send(nil)
	}

	return c.JSON(models.AgeResponse{
		Name: name,
		Age:  res.Age,
	})
}

// Stats returns the request count for every normalized name.
func (h *AgeHandler) Stats(c fiber.Ctx) error {
	return c.JSON(h.tracker.Snapshot())
}

// MaxAge returns the highest age among all requested names, or 0.
func (h *AgeHandler) MaxAge(c fiber.Ctx) error {
	best := h.resolver.MaxAge(c.Context())
	return c.JSON(models.MaxAgeResponse{Age: best.Age})
}
