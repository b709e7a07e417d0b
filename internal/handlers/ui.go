package handlers

import (
	"sort"

	"github.com/gofiber/fiber/v3"

	"agelookup/internal/models"
	"agelookup/internal/resolver"
	"agelookup/internal/tracker"
)

// UIHandler renders the browser page for looking up ages.
type UIHandler struct {
	resolver *resolver.Resolver
	tracker  *tracker.Tracker
}

// NewUIHandler creates a new UI handler.
func NewUIHandler(r *resolver.Resolver, t *tracker.Tracker) *UIHandler {
	return &UIHandler{resolver: r, tracker: t}
}

// Index renders the lookup form. A non-empty ?name= is looked up and counted
// the same way as the JSON endpoint; ?max=1 also computes the max age.
func (h *UIHandler) Index(c fiber.Ctx) error {
	data := fiber.Map{
		"Title": "Age Lookup",
		"Name":  "",
	}

	if name := c.Query("name"); name != "" {
		data["Name"] = name
		if _, err := h.tracker.Increment(name); err != nil {
			data["Error"] = err.Error()
		} else if res, err := h.resolver.Resolve(c.Context(), name); err != nil {
			data["Error"] = "Could not find an age for " + name
		} else {
			data["Age"] = res.Age
			data["Source"] = res.Source
		}
	}

	if c.Query("max") != "" {
		best := h.resolver.MaxAge(c.Context())
		data["MaxAge"] = best.Age
		data["MaxAgeName"] = best.Name
		data["ShowMaxAge"] = true
	}

	data["Stats"] = statsRows(h.tracker.Snapshot())

	return c.Render("index", data)
}

// statsRows orders counts by requests, most first, then by name.
func statsRows(counts map[string]int) []models.StatsRow {
	rows := make([]models.StatsRow, 0, len(counts))
	for name, n := range counts {
		rows = append(rows, models.StatsRow{Name: name, Requests: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Requests != rows[j].Requests {
			return rows[i].Requests > rows[j].Requests
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}
