package v1

import (
	"jobbridge/internal/delivery/http/handler"
	"jobbridge/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// Handlers groups the v1 endpoints. A nil handler leaves its routes
// unmounted.
type Handlers struct {
	Auth          *handler.AuthHandler
	User          *handler.UserHandler
	Beneficiaries *handler.BeneficiaryHandler
	Providers     *handler.ProviderHandler
	Jobs          *handler.JobHandler
	Matches       *handler.MatchHandler
	Skills        *handler.SkillHandler
}

func Register(r fiber.Router, h Handlers, authMw *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}

	if authMw == nil {
		return
	}
	protected := r.Group("", authMw.Middleware())

	RegisterUsers(protected, h.User)
	RegisterRecords(protected, h.Beneficiaries, h.Providers)
	RegisterJobs(protected, h.Jobs, h.Matches)
	if h.Skills != nil {
		h.Skills.RegisterRoutes(protected.Group("/skills"))
	}
}
