package job

import (
	"time"

	"jobbridge/internal/domain/skill"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusClosed:
		return true
	default:
		return false
	}
}

// Job is an opening published by a provider. ProviderID is a lookup key only;
// the provider record lives independently of its jobs.
type Job struct {
	ID             uuid.UUID
	ProviderID     uuid.UUID
	Title          string
	Category       Category
	Description    string
	RequiredSkills skill.Set
	Location       *string
	SalaryRange    *string
	Openings       int
	Status         Status
	CreatedBy      uuid.UUID
	CreatedAt      time.Time
}

func (j Job) IsActive() bool {
	return j.Status == StatusActive
}
