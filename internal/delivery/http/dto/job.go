package dto

import (
	"time"

	"jobbridge/internal/domain/job"

	"github.com/google/uuid"
)

type CreateJobRequest struct {
	ProviderID     uuid.UUID `json:"provider_id"`
	Title          string    `json:"title"`
	Category       string    `json:"category"`
	Description    string    `json:"description"`
	RequiredSkills []string  `json:"required_skills"`
	Location       *string   `json:"location"`
	SalaryRange    *string   `json:"salary_range"`
	Openings       int       `json:"openings"`
}

type JobResponse struct {
	ID             uuid.UUID `json:"id"`
	ProviderID     uuid.UUID `json:"provider_id"`
	CompanyName    string    `json:"company_name"`
	Title          string    `json:"title"`
	Category       string    `json:"category"`
	CategoryLabel  string    `json:"category_label"`
	Description    string    `json:"description"`
	RequiredSkills []string  `json:"required_skills"`
	Location       *string   `json:"location"`
	SalaryRange    *string   `json:"salary_range"`
	Openings       int       `json:"openings"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewJobResponse(j job.Job, companyName string) JobResponse {
	return JobResponse{
		ID:             j.ID,
		ProviderID:     j.ProviderID,
		CompanyName:    companyName,
		Title:          j.Title,
		Category:       string(j.Category),
		CategoryLabel:  j.Category.Label(),
		Description:    j.Description,
		RequiredSkills: j.RequiredSkills.Labels(),
		Location:       j.Location,
		SalaryRange:    j.SalaryRange,
		Openings:       j.Openings,
		Status:         string(j.Status),
		CreatedAt:      j.CreatedAt,
	}
}

type CategoryResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
