package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestHMACService_RoundTrip(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)
	id := uuid.New()

	access, err := svc.GenerateAccessToken(id, "op@ngo.org")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	claims, err := svc.ValidateAccessToken(access)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if claims.UserID != id || claims.Email != "op@ngo.org" || claims.TokenType != TokenTypeAccess {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if claims.Subject != id.String() || claims.ID == "" {
		t.Fatalf("expected subject and token id, got %+v", claims.RegisteredClaims)
	}

	refresh, err := svc.GenerateRefreshToken(id)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	claims, err = svc.ValidateRefreshToken(refresh)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if claims.TokenType != TokenTypeRefresh {
		t.Fatalf("expected refresh token, got %q", claims.TokenType)
	}
}

func TestHMACService_Expired(t *testing.T) {
	svc := NewHMACService("a", "r", time.Minute, time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, err := svc.GenerateAccessToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateAccessToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_ForeignSecret(t *testing.T) {
	a := NewHMACService("a", "r", time.Minute, time.Hour)
	b := NewHMACService("x", "y", time.Minute, time.Hour)

	tok, err := a.GenerateAccessToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := b.ValidateAccessToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
	if _, err := a.ValidateRefreshToken("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_MissingSecret(t *testing.T) {
	svc := NewHMACService("", "r", time.Minute, time.Hour)
	if _, err := svc.GenerateAccessToken(uuid.New(), ""); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
	if _, err := svc.ValidateAccessToken("anything"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_KindsDoNotCross(t *testing.T) {
	// same secret for both kinds, so only the audience and type keep them apart
	svc := NewHMACService("shared", "shared", time.Minute, time.Hour)
	id := uuid.New()

	refresh, err := svc.GenerateRefreshToken(id)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	claims, err := svc.ValidateRefreshToken(refresh)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if claims.TokenType != TokenTypeRefresh || claims.Issuer != Issuer {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if _, err := svc.ValidateAccessToken(refresh); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("refresh token must not validate as access, got %v", err)
	}
}
