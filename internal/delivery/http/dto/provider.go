package dto

import (
	"time"

	"jobbridge/internal/domain/provider"

	"github.com/google/uuid"
)

type CreateProviderRequest struct {
	CompanyName   string  `json:"company_name"`
	ContactPerson string  `json:"contact_person"`
	PhoneNumber   string  `json:"phone_number"`
	Email         string  `json:"email"`
	Address       *string `json:"address"`
	Industry      *string `json:"industry"`
}

type ProviderResponse struct {
	ID            uuid.UUID `json:"id"`
	CompanyName   string    `json:"company_name"`
	ContactPerson string    `json:"contact_person"`
	PhoneNumber   string    `json:"phone_number"`
	Email         string    `json:"email"`
	Address       *string   `json:"address"`
	Industry      *string   `json:"industry"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewProviderResponse(p provider.Provider) ProviderResponse {
	return ProviderResponse{
		ID:            p.ID,
		CompanyName:   p.CompanyName,
		ContactPerson: p.ContactPerson,
		PhoneNumber:   p.PhoneNumber,
		Email:         p.Email,
		Address:       p.Address,
		Industry:      p.Industry,
		CreatedAt:     p.CreatedAt,
	}
}
