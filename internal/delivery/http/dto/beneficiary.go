package dto

import (
	"time"

	"jobbridge/internal/domain/beneficiary"

	"github.com/google/uuid"
)

type CreateBeneficiaryRequest struct {
	FullName    string   `json:"full_name" form:"full_name"`
	PhoneNumber string   `json:"phone_number" form:"phone_number"`
	Email       *string  `json:"email" form:"email"`
	Address     *string  `json:"address" form:"address"`
	DateOfBirth *string  `json:"date_of_birth" form:"date_of_birth"`
	Gender      *string  `json:"gender" form:"gender"`
	Education   *string  `json:"education" form:"education"`
	Experience  *string  `json:"experience" form:"experience"`
	Skills      []string `json:"skills" form:"skills"`
}

type BeneficiaryResponse struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	Email       *string   `json:"email"`
	Address     *string   `json:"address"`
	DateOfBirth *string   `json:"date_of_birth"`
	Gender      *string   `json:"gender"`
	Education   *string   `json:"education"`
	Experience  *string   `json:"experience"`
	Skills      []string  `json:"skills"`
	Attachments []string  `json:"attachments"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewBeneficiaryResponse(b beneficiary.Beneficiary) BeneficiaryResponse {
	attachments := b.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	return BeneficiaryResponse{
		ID:          b.ID,
		FullName:    b.FullName,
		PhoneNumber: b.PhoneNumber,
		Email:       b.Email,
		Address:     b.Address,
		DateOfBirth: b.DateOfBirth,
		Gender:      b.Gender,
		Education:   b.Education,
		Experience:  b.Experience,
		Skills:      b.Skills.Labels(),
		Attachments: attachments,
		CreatedAt:   b.CreatedAt,
	}
}
