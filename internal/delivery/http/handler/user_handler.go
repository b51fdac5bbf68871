package handler

import (
	"context"
	"errors"

	"jobbridge/internal/delivery/http/middleware"
	"jobbridge/internal/domain/user"
	"jobbridge/internal/pkg/response"
	useruc "jobbridge/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type OperatorProfile interface {
	GetMe(ctx context.Context, userID uuid.UUID) (user.User, error)
}

type UserHandler struct {
	uc OperatorProfile
}

func NewUserHandler(uc OperatorProfile) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetMe)
}

func (h *UserHandler) GetMe(c fiber.Ctx) error {
	userID, err := requireOperator(c)
	if err != nil {
		return err
	}

	usr, err := h.uc.GetMe(c.Context(), userID)
	if err != nil {
		if errors.Is(err, useruc.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Operator not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, operatorResponse(usr))
}
