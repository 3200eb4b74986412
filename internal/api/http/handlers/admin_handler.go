package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/listener-admin/internal/api/dto"
	"github.com/spec-kit/listener-admin/internal/domain"
	"github.com/spec-kit/listener-admin/internal/platform"
	apperrors "github.com/spec-kit/listener-admin/pkg/util"
)

// AdminHandler serves the admin profile, settings and export endpoints.
type AdminHandler struct {
	client *platform.Client
}

// NewAdminHandler constructs handler.
func NewAdminHandler(client *platform.Client) *AdminHandler {
	return &AdminHandler{client: client}
}

// Profile handles GET /admin/profile.
func (h *AdminHandler) Profile(c *fiber.Ctx) error {
	profile, err := h.client.Profile(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": profile})
}

// UpdateProfile handles PATCH /admin/profile.
func (h *AdminHandler) UpdateProfile(c *fiber.Ctx) error {
	var profile platform.AdminProfile
	if err := c.BodyParser(&profile); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.client.UpdateProfile(c.UserContext(), profile); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": profile})
}

// ChangePassword handles POST /admin/change-password.
func (h *AdminHandler) ChangePassword(c *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return apperrors.NewValidationError("current and new password required", nil)
	}
	if err := h.client.ChangePassword(c.UserContext(), req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"changed": true}})
}

// Settings handles GET /admin/settings.
func (h *AdminHandler) Settings(c *fiber.Ctx) error {
	settings, err := h.client.GetSettings(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": settings})
}

// UpdateSettings handles PATCH /admin/settings.
func (h *AdminHandler) UpdateSettings(c *fiber.Ctx) error {
	var settings platform.Settings
	if err := c.BodyParser(&settings); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.client.UpdateSettings(c.UserContext(), settings); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": settings})
}

// ExportAnalytics handles GET /analytics/export, streaming the blob through.
func (h *AdminHandler) ExportAnalytics(c *fiber.Ctx) error {
	rng := domain.TimeRange(c.Query("range", string(domain.TimeRange7d)))
	blob, contentType, err := h.client.ExportAnalytics(c.UserContext(), rng, c.Query("format", "csv"))
	if err != nil {
		return err
	}
	if contentType != "" {
		c.Set(fiber.HeaderContentType, contentType)
	}
	return c.Send(blob)
}
