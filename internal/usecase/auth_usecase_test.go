package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobbridge/internal/pkg/jwt"
	ucauth "jobbridge/internal/usecase/auth"

	"golang.org/x/crypto/bcrypt"
)

func newTestAuth(users *mockUserRepo) *Auth {
	svc := ucauth.NewServiceWithCost(users, bcrypt.MinCost)
	return NewAuthUsecase(svc, users, jwt.NewHMACService("access", "refresh", time.Minute, time.Hour))
}

func TestAuth_RegisterLoginRefresh(t *testing.T) {
	users := newMockUserRepo()
	uc := newTestAuth(users)
	ctx := context.Background()

	usr, tokens, err := uc.Register(ctx, ucauth.RegisterInput{Email: " Op@NGO.org ", FullName: "Field Officer", Password: "s3cretpass"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if usr.Email != "op@ngo.org" || usr.PasswordHash != "" {
		t.Fatalf("unexpected user %+v", usr)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatalf("expected token pair")
	}

	if _, _, err := uc.Register(ctx, ucauth.RegisterInput{Email: "op@ngo.org", Password: "s3cretpass"}); !errors.Is(err, ucauth.ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}

	if _, _, err := uc.Login(ctx, ucauth.LoginInput{Email: "op@ngo.org", Password: "wrongpass"}); !errors.Is(err, ucauth.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := uc.Login(ctx, ucauth.LoginInput{Email: "OP@ngo.org", Password: "s3cretpass"}); err != nil {
		t.Fatalf("unexpected login err: %v", err)
	}

	refreshed, err := uc.Refresh(ctx, tokens.RefreshToken)
	if err != nil || refreshed.AccessToken == "" {
		t.Fatalf("unexpected refresh result %+v, %v", refreshed, err)
	}

	if _, err := uc.Refresh(ctx, tokens.AccessToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("access token must not refresh, got %v", err)
	}
	if _, err := uc.Refresh(ctx, ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuth_RegisterValidation(t *testing.T) {
	uc := newTestAuth(newMockUserRepo())
	for _, in := range []ucauth.RegisterInput{
		{Email: "", Password: "longenough"},
		{Email: "not-an-email", Password: "longenough"},
		{Email: "a@b.org", Password: "short"},
	} {
		if _, _, err := uc.Register(context.Background(), in); !errors.Is(err, ucauth.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}
}
