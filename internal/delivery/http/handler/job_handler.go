package handler

import (
	"context"

	"jobbridge/internal/delivery/http/dto"
	"jobbridge/internal/delivery/http/middleware"
	"jobbridge/internal/domain/job"
	"jobbridge/internal/pkg/response"
	"jobbridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/categories", h.Categories)
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Post("/:id/close", h.Close)
	r.Post("/:id/reopen", h.Reopen)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	operatorID, err := requireOperator(c)
	if err != nil {
		return err
	}

	var req dto.CreateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), operatorID, usecase.CreateJobInput{
		ProviderID:     req.ProviderID,
		Title:          req.Title,
		Category:       req.Category,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		Location:       req.Location,
		SalaryRange:    req.SalaryRange,
		Openings:       req.Openings,
	})
	if err != nil {
		return mapUsecaseError(err, "Job not found")
	}
	return response.Success(c, fiber.StatusCreated, "Job posted", dto.NewJobResponse(created.Job, created.CompanyName))
}

// List accepts ?status=active|closed.
func (h *JobHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), c.Query("status"))
	if err != nil {
		return mapUsecaseError(err, "Job not found")
	}

	out := make([]dto.JobResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewJobResponse(it.Job, it.CompanyName))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	return h.withID(c, h.uc.Get)
}

func (h *JobHandler) Close(c fiber.Ctx) error {
	return h.withID(c, h.uc.Close)
}

func (h *JobHandler) Reopen(c fiber.Ctx) error {
	return h.withID(c, h.uc.Reopen)
}

func (h *JobHandler) withID(c fiber.Ctx, fn func(ctx context.Context, id uuid.UUID) (usecase.JobListItem, error)) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	it, err := fn(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err, "Job not found")
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(it.Job, it.CompanyName))
}

func (h *JobHandler) Categories(c fiber.Ctx) error {
	cats := job.Categories()
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, it := range cats {
		out = append(out, dto.CategoryResponse{Value: string(it.Value), Label: it.Label})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
