package handler

import (
	"jobbridge/internal/delivery/http/dto"
	"jobbridge/internal/delivery/http/middleware"
	"jobbridge/internal/pkg/response"
	"jobbridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProviderHandler struct {
	uc usecase.ProviderUsecase
}

func NewProviderHandler(uc usecase.ProviderUsecase) *ProviderHandler {
	return &ProviderHandler{uc: uc}
}

func (h *ProviderHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
}

func (h *ProviderHandler) Create(c fiber.Ctx) error {
	operatorID, err := requireOperator(c)
	if err != nil {
		return err
	}

	var req dto.CreateProviderRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), operatorID, usecase.CreateProviderInput{
		CompanyName:   req.CompanyName,
		ContactPerson: req.ContactPerson,
		PhoneNumber:   req.PhoneNumber,
		Email:         req.Email,
		Address:       req.Address,
		Industry:      req.Industry,
	})
	if err != nil {
		return mapUsecaseError(err, "Provider not found")
	}
	return response.Success(c, fiber.StatusCreated, "Provider registered", dto.NewProviderResponse(created))
}

func (h *ProviderHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err, "Provider not found")
	}

	out := make([]dto.ProviderResponse, 0, len(items))
	for _, p := range items {
		out = append(out, dto.NewProviderResponse(p))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ProviderHandler) Get(c fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	p, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err, "Provider not found")
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProviderResponse(p))
}
