package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/accounting-service/internal/api/http/handlers"
	"github.com/spec-kit/accounting-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Accountants *handlers.AccountantsHandler
	Clients     *handlers.ClientsHandler
	Documents   *handlers.DocumentsHandler
}

// RegisterRoutes wires HTTP routes. Login and registration are the only
// open endpoints; everything else requires the identity header injected
// by the gateway filter.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/register", cfg.Auth.Register)
	app.Post("/auth/login", cfg.Auth.Login)
	app.Post("/client/login", cfg.Clients.Login)

	user := app.Group("/user", auth.RequireIdentity())
	user.Get("/load-details", cfg.Accountants.LoadDetails)

	client := app.Group("/client", auth.RequireIdentity())
	client.Post("/create", cfg.Clients.Create)
	client.Delete("/delete/:id", cfg.Clients.Delete)
	client.Get("/load-case-details", cfg.Clients.LoadCaseDetails)
	client.Get("/load-client-case", cfg.Clients.LoadClientCase)
	client.Put("/update", cfg.Clients.Update)
	client.Get("/load-clients", cfg.Clients.LoadClients)
	client.Get("/count", cfg.Clients.Count)
	client.Post("/grant-access", cfg.Clients.GrantAccess)

	document := app.Group("/document", auth.RequireIdentity())
	document.Post("/upload", cfg.Documents.Upload)
	document.Get("/load", cfg.Documents.List)
	document.Get("/:id", cfg.Documents.Get)
	document.Put("/:id/status", cfg.Documents.UpdateStatus)
	document.Delete("/:id", cfg.Documents.Delete)
}
