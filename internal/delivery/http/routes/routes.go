package routes

import (
	"jobbridge/internal/delivery/http/handler"
	"jobbridge/internal/delivery/http/middleware"
	v1 "jobbridge/internal/delivery/http/routes/v1"
	"jobbridge/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health   *handler.HealthHandler
	records  *ws.Handler
	handlers v1.Handlers
	auth     *middleware.AuthMiddleware
}

func NewRegistry(health *handler.HealthHandler, records *ws.Handler, handlers v1.Handlers, auth *middleware.AuthMiddleware) *Registry {
	return &Registry{health: health, records: records, handlers: handlers, auth: auth}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerRealtime(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

// registerRealtime mounts the records_updated feed. Browsers cannot set an
// Authorization header on a websocket upgrade, so the feed is public and
// carries only entity ids.
func (r *Registry) registerRealtime(app *fiber.App) {
	if r.records != nil {
		app.Get("/ws/records", r.records.HandleRecordsWS)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.handlers, r.auth)
}
