package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/subsidy-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Vendors     *handlers.VendorsHandler
	Maintenance *handlers.MaintenanceHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/signup", cfg.Auth.Signup)
	app.Post("/login", cfg.Auth.Login)

	app.Get("/vendors", cfg.Vendors.List)
	app.Post("/add-vendor", cfg.Vendors.Add)
	app.Get("/vendors/:vendorId/progress", cfg.Vendors.Progress)
	app.Post("/vendors/:vendorId/progress", cfg.Vendors.RecordProgress)
	app.Post("/vendors/:vendorId/payout", cfg.Vendors.Payout)

	app.Post("/reset", cfg.Maintenance.Reset)
}
