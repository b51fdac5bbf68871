package v1

import (
	"jobbridge/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterRecords(r fiber.Router, beneficiaryHandler *handler.BeneficiaryHandler, providerHandler *handler.ProviderHandler) {
	if r == nil {
		return
	}

	if beneficiaryHandler != nil {
		beneficiaryHandler.RegisterRoutes(r.Group("/beneficiaries"))
	}
	if providerHandler != nil {
		providerHandler.RegisterRoutes(r.Group("/providers"))
	}
}
