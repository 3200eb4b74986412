package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/listener-admin/internal/api/dto"
	"github.com/spec-kit/listener-admin/internal/platform"
	"github.com/spec-kit/listener-admin/internal/service"
	"github.com/spec-kit/listener-admin/internal/store"
	apperrors "github.com/spec-kit/listener-admin/pkg/util"
)

// SessionsHandler serves the session management view and the assignment flow.
type SessionsHandler struct {
	sessions   *store.Sessions
	service    *service.SessionService
	assignment *service.AssignmentService
}

// NewSessionsHandler constructs handler.
func NewSessionsHandler(sessions *store.Sessions, sessionService *service.SessionService, assignmentService *service.AssignmentService) *SessionsHandler {
	return &SessionsHandler{sessions: sessions, service: sessionService, assignment: assignmentService}
}

// List handles GET /sessions.
func (h *SessionsHandler) List(c *fiber.Ctx) error {
	applyListQuery(c, h.sessions.Store)
	return c.JSON(fiber.Map{
		"data":           h.sessions.Snapshot(),
		"completedToday": h.sessions.CompletedToday(),
		"unassigned":     len(h.sessions.Unassigned()),
	})
}

// Create handles POST /sessions.
func (h *SessionsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	created, err := h.service.Create(c.UserContext(), platform.CreateSessionInput{
		UserID:                req.UserID,
		DateTime:              req.DateTime,
		DurationMinutes:       req.DurationMinutes,
		Priority:              req.Priority,
		PreferredLanguages:    req.PreferredLanguages,
		SpecialtyRequirements: req.SpecialtyRequirements,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": created})
}

// All handles GET /sessions/all, the unfiltered listing for exports and
// audit checks.
func (h *SessionsHandler) All(c *fiber.Ctx) error {
	sessions, err := h.service.All(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": sessions, "total": len(sessions)})
}

// Candidates handles GET /sessions/:id/candidates. The full listener list is
// returned with attributes; fit is judged by the admin, not filtered here.
func (h *SessionsHandler) Candidates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.assignment.Candidates(c.UserContext())})
}

// Assign handles POST /sessions/:id/assign.
func (h *SessionsHandler) Assign(c *fiber.Ctx) error {
	var req dto.AssignSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	assigned, err := h.assignment.Assign(c.UserContext(), c.Params("id"), req.ListenerID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": assigned})
}

// UpdateStatus handles PATCH /sessions/:id/status.
func (h *SessionsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateSessionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	updated, err := h.service.UpdateStatus(c.UserContext(), c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": updated})
}
