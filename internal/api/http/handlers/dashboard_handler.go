package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/listener-admin/internal/domain"
	"github.com/spec-kit/listener-admin/internal/store"
)

// DashboardHandler serves the overview page data.
type DashboardHandler struct {
	dashboard *store.Dashboard
	sessions  *store.Sessions
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboard *store.Dashboard, sessions *store.Sessions) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, sessions: sessions}
}

// Overview handles GET /dashboard. A range query switches the selector and
// re-fetches before answering; a range matching the current one does not
// trigger another upstream round trip.
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	if rng := c.Query("range"); rng != "" && domain.TimeRange(rng) != h.dashboard.TimeRange() {
		h.dashboard.SetTimeRange(c.UserContext(), domain.TimeRange(rng))
	}
	snapshot := h.dashboard.Snapshot()
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"overview":       snapshot,
			"completedToday": h.sessions.CompletedToday(),
		},
	})
}
