package v1

import (
	"jobbridge/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// RegisterUsers mounts the operator's own profile at /me.
func RegisterUsers(r fiber.Router, userHandler *handler.UserHandler) {
	if r == nil {
		return
	}
	if userHandler == nil {
		return
	}

	userHandler.RegisterRoutes(r)
}
