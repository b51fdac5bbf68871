package dto

import "github.com/google/uuid"

type MatchBeneficiary struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	Skills      []string  `json:"skills"`
}

type MatchJob struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Category       string    `json:"category"`
	CompanyName    string    `json:"company_name"`
	Location       *string   `json:"location"`
	Openings       int       `json:"openings"`
	RequiredSkills []string  `json:"required_skills"`
}

type MatchResponse struct {
	Beneficiary     MatchBeneficiary `json:"beneficiary"`
	Job             MatchJob         `json:"job"`
	MatchingSkills  []string         `json:"matching_skills"`
	MatchPercentage int              `json:"match_percentage"`
}

type MatchListResponse struct {
	Items  []MatchResponse `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}
