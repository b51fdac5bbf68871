package v1

import (
	"jobbridge/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterJobs(r fiber.Router, jobHandler *handler.JobHandler, matchHandler *handler.MatchHandler) {
	if r == nil {
		return
	}

	if jobHandler != nil {
		jobHandler.RegisterRoutes(r.Group("/jobs"))
	}
	if matchHandler != nil {
		matchHandler.RegisterRoutes(r.Group("/matches"))
	}
}
