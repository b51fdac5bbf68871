package handler

import (
	"errors"
	"strings"

	"jobbridge/internal/delivery/http/middleware"
	"jobbridge/internal/pkg/response"
	"jobbridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func mapUsecaseError(err error, notFound string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, invalidMessage(err), nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, notFound, nil, err)
	case errors.Is(err, usecase.ErrConflict):
		return middleware.NewAppError(fiber.StatusConflict, "Already exists", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrMatchingUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Matching temporarily unavailable, please retry", nil, err)
	case errors.Is(err, usecase.ErrAttachmentsUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Attachment storage unavailable", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

// invalidMessage strips the sentinel prefix so the caller sees only the
// field message, e.g. "valid phone number is required".
func invalidMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), usecase.ErrInvalidInput.Error()+": ")
	if msg == "" || msg == usecase.ErrInvalidInput.Error() {
		return "Bad request"
	}
	return msg
}
