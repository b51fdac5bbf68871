package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an NGO operator account. Operators register beneficiaries,
// providers and jobs.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
