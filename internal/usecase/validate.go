package usecase

import (
	"net/mail"
	"strings"
	"time"
)

const minPhoneLength = 10

func validPhone(phone string) bool {
	return len(strings.TrimSpace(phone)) >= minPhoneLength
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func validDate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

// optional trims s and maps blank values to nil.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
