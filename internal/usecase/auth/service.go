// Package auth owns operator credentials: registration, password checks and
// the bcrypt hashes behind them.
package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"jobbridge/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Email    string
	FullName string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// Service never returns a user with PasswordHash set.
type Service struct {
	users user.Repository
	cost  int

	// compared against on unknown emails so both paths cost one bcrypt check
	decoy []byte
}

func NewService(users user.Repository) *Service {
	return NewServiceWithCost(users, bcrypt.DefaultCost)
}

// NewServiceWithCost lets tests keep bcrypt fast.
func NewServiceWithCost(users user.Repository, cost int) *Service {
	decoy, _ := bcrypt.GenerateFromPassword([]byte("jobbridge-decoy-password"), cost)
	return &Service{users: users, cost: cost, decoy: decoy}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	in, err := in.normalize()
	if err != nil {
		return user.User{}, err
	}

	switch taken, err := s.users.ExistsByEmail(ctx, in.Email); {
	case err != nil:
		return user.User{}, ErrInternal
	case taken:
		return user.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	id := uuid.New()
	if err := s.users.CreateUser(ctx, user.User{
		ID:           id,
		Email:        in.Email,
		FullName:     in.FullName,
		PasswordHash: string(hash),
	}); err != nil {
		// a concurrent registration may have claimed the email in between
		if taken, exErr := s.users.ExistsByEmail(ctx, in.Email); exErr == nil && taken {
			return user.User{}, ErrEmailAlreadyRegistered
		}
		return user.User{}, ErrInternal
	}

	created, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return withoutHash(created), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetUserByEmail(ctx, email)
	switch {
	case errors.Is(err, user.ErrNotFound):
		_ = bcrypt.CompareHashAndPassword(s.decoy, []byte(in.Password))
		return user.User{}, ErrInvalidCredentials
	case err != nil:
		return user.User{}, ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		return user.User{}, ErrInvalidCredentials
	}
	return withoutHash(u), nil
}

func (in RegisterInput) normalize() (RegisterInput, error) {
	in.Email = normalizeEmail(in.Email)
	in.FullName = strings.TrimSpace(in.FullName)

	if addr, err := mail.ParseAddress(in.Email); err != nil || addr.Address != in.Email {
		return RegisterInput{}, ErrInvalidInput
	}
	if len(strings.TrimSpace(in.Password)) < minPasswordLength {
		return RegisterInput{}, ErrInvalidInput
	}
	return in, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func withoutHash(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
