package handler

import (
	"jobbridge/internal/delivery/http/dto"
	"jobbridge/internal/delivery/http/middleware"
	"jobbridge/internal/pkg/response"
	"jobbridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
}

// List returns the ranked matches. q and phone narrow by beneficiary; limit
// and offset page through the ranking without reordering it.
func (h *MatchHandler) List(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	page, err := h.uc.GetMatches(c.Context(), usecase.MatchParams{
		Query:  c.Query("q"),
		Phone:  c.Query("phone"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return mapUsecaseError(err, "Match not found")
	}

	items := make([]dto.MatchResponse, 0, len(page.Items))
	for _, m := range page.Items {
		items = append(items, dto.MatchResponse{
			Beneficiary: dto.MatchBeneficiary{
				ID:          m.Beneficiary.ID,
				FullName:    m.Beneficiary.FullName,
				PhoneNumber: m.Beneficiary.PhoneNumber,
				Skills:      m.Beneficiary.Skills.Labels(),
			},
			Job: dto.MatchJob{
				ID:             m.Job.ID,
				Title:          m.Job.Title,
				Category:       string(m.Job.Category),
				CompanyName:    m.CompanyName,
				Location:       m.Job.Location,
				Openings:       m.Job.Openings,
				RequiredSkills: m.Job.RequiredSkills.Labels(),
			},
			MatchingSkills:  m.MatchingSkills,
			MatchPercentage: m.MatchPercentage,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.MatchListResponse{
		Items:  items,
		Total:  page.Total,
		Limit:  limit,
		Offset: offset,
	})
}
