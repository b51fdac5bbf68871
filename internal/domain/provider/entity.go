package provider

import (
	"time"

	"github.com/google/uuid"
)

type Provider struct {
	ID            uuid.UUID
	CompanyName   string
	ContactPerson string
	PhoneNumber   string
	Email         string
	Address       *string
	Industry      *string
	CreatedBy     uuid.UUID
	CreatedAt     time.Time
}
