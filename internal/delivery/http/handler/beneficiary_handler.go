package handler

import (
	"mime/multipart"
	"strings"

	"jobbridge/internal/delivery/http/dto"
	"jobbridge/internal/delivery/http/middleware"
	"jobbridge/internal/domain/beneficiary"
	"jobbridge/internal/pkg/response"
	"jobbridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const attachmentsField = "attachments"

type BeneficiaryHandler struct {
	uc     usecase.BeneficiaryUsecase
	export usecase.ExportUsecase
}

func NewBeneficiaryHandler(uc usecase.BeneficiaryUsecase, export usecase.ExportUsecase) *BeneficiaryHandler {
	return &BeneficiaryHandler{uc: uc, export: export}
}

func (h *BeneficiaryHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Get("/:id/pdf", h.ProfilePDF)
}

// Create accepts JSON, or multipart/form-data when files are attached.
func (h *BeneficiaryHandler) Create(c fiber.Ctx) error {
	operatorID, err := requireOperator(c)
	if err != nil {
		return err
	}

	var (
		req         dto.CreateBeneficiaryRequest
		attachments []usecase.Attachment
	)
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		req = beneficiaryFromForm(form)

		files := form.File[attachmentsField]
		closers := make([]multipart.File, 0, len(files))
		defer func() {
			for _, f := range closers {
				_ = f.Close()
			}
		}()
		for _, fh := range files {
			f, err := fh.Open()
			if err != nil {
				return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable attachment", nil, err)
			}
			closers = append(closers, f)
			attachments = append(attachments, usecase.Attachment{
				FileName:    fh.Filename,
				ContentType: fh.Header.Get(fiber.HeaderContentType),
				Size:        fh.Size,
				Body:        f,
			})
		}
	} else if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), operatorID, usecase.CreateBeneficiaryInput{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Education:   req.Education,
		Experience:  req.Experience,
		Skills:      req.Skills,
	}, attachments)
	if err != nil {
		return mapUsecaseError(err, "Beneficiary not found")
	}

	return response.Success(c, fiber.StatusCreated, "Beneficiary registered", dto.NewBeneficiaryResponse(created))
}

func beneficiaryFromForm(form *multipart.Form) dto.CreateBeneficiaryRequest {
	first := func(key string) string {
		if v := form.Value[key]; len(v) > 0 {
			return v[0]
		}
		return ""
	}
	optional := func(key string) *string {
		if _, ok := form.Value[key]; !ok {
			return nil
		}
		v := first(key)
		return &v
	}

	// skills arrive either repeated or as one comma separated value
	var skills []string
	for _, v := range form.Value["skills"] {
		skills = append(skills, parseListQuery(v)...)
	}

	return dto.CreateBeneficiaryRequest{
		FullName:    first("full_name"),
		PhoneNumber: first("phone_number"),
		Email:       optional("email"),
		Address:     optional("address"),
		DateOfBirth: optional("date_of_birth"),
		Gender:      optional("gender"),
		Education:   optional("education"),
		Experience:  optional("experience"),
		Skills:      skills,
	}
}

func (h *BeneficiaryHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), beneficiary.Filter{
		Name:         c.Query("name"),
		Phone:        c.Query("phone"),
		RegisteredOn: c.Query("date"),
	})
	if err != nil {
		return mapUsecaseError(err, "Beneficiary not found")
	}

	out := make([]dto.BeneficiaryResponse, 0, len(items))
	for _, b := range items {
		out = append(out, dto.NewBeneficiaryResponse(b))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *BeneficiaryHandler) Get(c fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	b, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err, "Beneficiary not found")
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewBeneficiaryResponse(b))
}

// ProfilePDF streams a profile document. ?fields=full_name,skills picks the
// lines to print.
func (h *BeneficiaryHandler) ProfilePDF(c fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	doc, err := h.export.BeneficiaryProfilePDF(c.Context(), id, parseListQuery(c.Query("fields")))
	if err != nil {
		return mapUsecaseError(err, "Beneficiary not found")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.FileName+`"`)
	return c.Status(fiber.StatusOK).Send(doc.Content)
}
