package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/listener-admin/internal/api/http/handlers"
	"github.com/spec-kit/listener-admin/internal/service"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Auth      *handlers.AuthHandler
	Dashboard *handlers.DashboardHandler
	Users     *handlers.UsersHandler
	Listeners *handlers.ListenersHandler
	Sessions  *handlers.SessionsHandler
	Admin     *handlers.AdminHandler
	AuthSvc   *service.AuthService
}

// RegisterRoutes wires HTTP routes. Everything except the auth forms sits
// behind the auth gate.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/setup", cfg.Auth.Setup)

	protected := app.Group("", AuthGate(cfg.AuthSvc))
	protected.Post("/auth/logout", cfg.Auth.Logout)

	protected.Get("/dashboard", cfg.Dashboard.Overview)

	protected.Get("/users", cfg.Users.List)
	protected.Post("/users/:id/flag", cfg.Users.Flag)
	protected.Patch("/users/:id/status", cfg.Users.UpdateStatus)

	protected.Get("/listeners", cfg.Listeners.List)
	protected.Post("/listeners", cfg.Listeners.Create)
	protected.Get("/listeners/:id", cfg.Listeners.Get)
	protected.Get("/listeners/:id/messages", cfg.Listeners.Messages)
	protected.Post("/listeners/:id/messages", cfg.Listeners.SendMessage)
	protected.Patch("/listeners/:id/status", cfg.Listeners.UpdateStatus)
	protected.Patch("/listeners/:id/availability", cfg.Listeners.UpdateAvailability)
	protected.Get("/listeners/:id/report", cfg.Listeners.Report)

	protected.Get("/sessions", cfg.Sessions.List)
	protected.Post("/sessions", cfg.Sessions.Create)
	protected.Get("/sessions/all", cfg.Sessions.All)
	protected.Get("/sessions/:id/candidates", cfg.Sessions.Candidates)
	protected.Post("/sessions/:id/assign", cfg.Sessions.Assign)
	protected.Patch("/sessions/:id/status", cfg.Sessions.UpdateStatus)

	protected.Get("/admin/profile", cfg.Admin.Profile)
	protected.Patch("/admin/profile", cfg.Admin.UpdateProfile)
	protected.Post("/admin/change-password", cfg.Admin.ChangePassword)
	protected.Get("/admin/settings", cfg.Admin.Settings)
	protected.Patch("/admin/settings", cfg.Admin.UpdateSettings)
	protected.Get("/analytics/export", cfg.Admin.ExportAnalytics)
}
