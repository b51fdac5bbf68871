package handler

import (
	"context"
	"time"

	"jobbridge/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger is satisfied by the database pool and the Redis cache.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

// Health fails only when the database is unreachable. A missing cache is
// reported but tolerated.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{"database": "up", "cache": "up"}
	if h.db == nil || h.db.Ping(ctx) != nil {
		status["database"] = "down"
	}
	if h.cache == nil || h.cache.Ping(ctx) != nil {
		status["cache"] = "down"
	}

	if status["database"] != "up" {
		return response.Error(c, fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, status)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, status)
}
