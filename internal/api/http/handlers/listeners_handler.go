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

// ListenersHandler serves the listener management view.
type ListenersHandler struct {
	listeners *store.Listeners
	service   *service.ListenerService
}

// NewListenersHandler constructs handler.
func NewListenersHandler(listeners *store.Listeners, listenerService *service.ListenerService) *ListenersHandler {
	return &ListenersHandler{listeners: listeners, service: listenerService}
}

// List handles GET /listeners.
func (h *ListenersHandler) List(c *fiber.Ctx) error {
	applyListQuery(c, h.listeners.Store)
	return c.JSON(fiber.Map{
		"data":   h.listeners.Snapshot(),
		"online": len(h.listeners.Online()),
	})
}

// Create handles POST /listeners.
func (h *ListenersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateListenerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	listener, err := h.service.Create(c.UserContext(), platform.CreateListenerInput{
		Name:        req.Name,
		Description: req.Description,
		Gender:      req.Gender,
		Email:       req.Email,
		Phone:       req.Phone,
		Specialties: req.Specialties,
		Languages:   req.Languages,
		Schedule:    req.Schedule,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": listener})
}

// Get handles GET /listeners/:id: it fetches the listener's full profile and
// opens the detail panel on it. A listener that has meanwhile disappeared
// upstream closes any stale panel instead.
func (h *ListenersHandler) Get(c *fiber.Ctx) error {
	listener, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		h.listeners.ClearSelection()
		return err
	}
	h.listeners.Select(*listener)
	return c.JSON(fiber.Map{"data": listener})
}

// Messages handles GET /listeners/:id/messages.
func (h *ListenersHandler) Messages(c *fiber.Ctx) error {
	messages, err := h.service.Messages(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": messages})
}

// SendMessage handles POST /listeners/:id/messages.
func (h *ListenersHandler) SendMessage(c *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	message, err := h.service.SendMessage(c.UserContext(), c.Params("id"), platform.MessageInput{
		Subject:  req.Subject,
		Content:  req.Content,
		Priority: req.Priority,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": message})
}

// UpdateStatus handles PATCH /listeners/:id/status.
func (h *ListenersHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdatePresenceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.service.UpdateStatus(c.UserContext(), c.Params("id"), req.Status); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": req.Status}})
}

// UpdateAvailability handles PATCH /listeners/:id/availability.
func (h *ListenersHandler) UpdateAvailability(c *fiber.Ctx) error {
	var req dto.UpdateAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.service.UpdateAvailability(c.UserContext(), c.Params("id"), req.Schedule); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"updated": true}})
}

// Report handles GET /listeners/:id/report, streaming the blob through.
func (h *ListenersHandler) Report(c *fiber.Ctx) error {
	blob, contentType, err := h.service.Report(c.UserContext(), c.Params("id"), c.Query("format", "csv"))
	if err != nil {
		return err
	}
	if contentType != "" {
		c.Set(fiber.HeaderContentType, contentType)
	}
	return c.Send(blob)
}
