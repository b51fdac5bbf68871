package beneficiary

import (
	"strings"
	"time"

	"jobbridge/internal/domain/skill"

	"github.com/google/uuid"
)

type Beneficiary struct {
	ID          uuid.UUID
	FullName    string
	PhoneNumber string
	Email       *string
	Address     *string
	DateOfBirth *string
	Gender      *string
	Education   *string
	Experience  *string
	Skills      skill.Set
	Attachments []string
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
}

// Filter narrows a beneficiary list the way the registry screen does. Zero
// fields match everything.
type Filter struct {
	Name         string
	Phone        string
	RegisteredOn string // YYYY-MM-DD, UTC
}

func (f Filter) IsZero() bool {
	return strings.TrimSpace(f.Name) == "" && strings.TrimSpace(f.Phone) == "" && strings.TrimSpace(f.RegisteredOn) == ""
}

func (f Filter) Match(b Beneficiary) bool {
	name := strings.ToLower(strings.TrimSpace(f.Name))
	if name != "" && !strings.Contains(strings.ToLower(b.FullName), name) {
		return false
	}
	phone := strings.TrimSpace(f.Phone)
	if phone != "" && !strings.Contains(b.PhoneNumber, phone) {
		return false
	}
	day := strings.TrimSpace(f.RegisteredOn)
	if day != "" && b.CreatedAt.UTC().Format(time.DateOnly) != day {
		return false
	}
	return true
}

func (f Filter) Apply(items []Beneficiary) []Beneficiary {
	out := make([]Beneficiary, 0, len(items))
	for _, b := range items {
		if f.Match(b) {
			out = append(out, b)
		}
	}
	return out
}
