package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/listener-admin/internal/api/dto"
	"github.com/spec-kit/listener-admin/internal/domain"
	"github.com/spec-kit/listener-admin/internal/platform"
	"github.com/spec-kit/listener-admin/internal/store"
	apperrors "github.com/spec-kit/listener-admin/pkg/util"
)

// UsersHandler serves the user management view.
type UsersHandler struct {
	users  *store.Users
	client *platform.Client
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *store.Users, client *platform.Client) *UsersHandler {
	return &UsersHandler{users: users, client: client}
}

// List handles GET /users. Search, page and range parameters drive the
// store's local state, the same way the view widgets do.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	applyListQuery(c, h.users.Store)
	return c.JSON(fiber.Map{
		"data":    h.users.Snapshot(),
		"metrics": h.users.Metrics(),
	})
}

// Flag handles POST /users/:id/flag.
func (h *UsersHandler) Flag(c *fiber.Ctx) error {
	var req dto.FlagUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.client.FlagUser(c.UserContext(), c.Params("id"), req.Reason); err != nil {
		return err
	}
	h.users.Refresh(c.UserContext())
	return c.JSON(fiber.Map{"data": fiber.Map{"flagged": true}})
}

// UpdateStatus handles PATCH /users/:id/status.
func (h *UsersHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateAccountStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status != domain.AccountStatusActive && req.Status != domain.AccountStatusInactive {
		return apperrors.NewValidationError("status must be active or inactive", nil)
	}
	if err := h.client.UpdateUserStatus(c.UserContext(), c.Params("id"), req.Status); err != nil {
		return err
	}
	h.users.Refresh(c.UserContext())
	return c.JSON(fiber.Map{"data": fiber.Map{"status": req.Status}})
}

// applyListQuery maps the common view query parameters onto a store.
func applyListQuery[T any](c *fiber.Ctx, s *store.Store[T]) {
	if rng := c.Query("range"); rng != "" && domain.TimeRange(rng) != s.TimeRange() {
		s.SetTimeRange(c.UserContext(), domain.TimeRange(rng))
	}
	if c.Request().URI().QueryArgs().Has("search") {
		s.Search(c.Query("search"))
	}
	if pageStr := c.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			s.SetPage(page)
		}
	}
}
