package user

import (
	"context"
	"errors"

	"jobbridge/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("operator not found")
	ErrInternal = errors.New("internal error")
)

// Service exposes the signed-in operator's own account.
type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

func (s *Service) GetMe(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	usr.PasswordHash = ""
	return usr, nil
}
