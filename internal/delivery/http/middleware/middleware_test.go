package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobbridge/internal/pkg/jwt"
	"jobbridge/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func decode(t *testing.T, resp *http.Response) response.SemanticResponse {
	t.Helper()
	defer resp.Body.Close()
	var out response.SemanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	return out
}

func newApp(h fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(NewErrorMiddleware(nil).Middleware())
	app.Get("/", h)
	return app
}

func TestErrorMiddleware_AppError(t *testing.T) {
	app := newApp(func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusBadRequest, "phone too short", nil, errors.New("detail"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	body := decode(t, resp)
	if resp.StatusCode != fiber.StatusBadRequest || body.Message != "phone too short" {
		t.Fatalf("unexpected response %d %+v", resp.StatusCode, body)
	}
}

func TestErrorMiddleware_HidesInternalErrors(t *testing.T) {
	app := newApp(func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusInternalServerError, "db password leaked", nil, nil)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	body := decode(t, resp)
	if resp.StatusCode != fiber.StatusInternalServerError || body.Message != response.MessageInternalServerError {
		t.Fatalf("unexpected response %d %+v", resp.StatusCode, body)
	}
}

func TestErrorMiddleware_KeepsServiceUnavailable(t *testing.T) {
	app := newApp(func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusServiceUnavailable, "try again", nil, nil)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	body := decode(t, resp)
	if resp.StatusCode != fiber.StatusServiceUnavailable || body.Message != "try again" {
		t.Fatalf("unexpected response %d %+v", resp.StatusCode, body)
	}
}

func TestErrorMiddleware_RecoversPanics(t *testing.T) {
	app := newApp(func(c fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
}

func TestAuthMiddleware(t *testing.T) {
	svc := jwt.NewHMACService("access", "refresh", time.Minute, time.Hour)
	id := uuid.New()

	app := fiber.New()
	app.Use(NewErrorMiddleware(nil).Middleware())
	app.Get("/me", NewAuthMiddleware(svc).Middleware(), func(c fiber.Ctx) error {
		return c.SendString(OperatorID(c).String())
	})

	access, _ := svc.GenerateAccessToken(id, "op@ngo.org")
	refresh, _ := svc.GenerateRefreshToken(id)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing", header: "", want: fiber.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + access, want: fiber.StatusUnauthorized},
		{name: "refresh token", header: "Bearer " + refresh, want: fiber.StatusUnauthorized},
		{name: "garbage", header: "Bearer abc", want: fiber.StatusUnauthorized},
		{name: "valid", header: "bearer " + access, want: fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if resp.StatusCode != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, resp.StatusCode)
			}
			if tt.want == fiber.StatusUnauthorized && resp.Header.Get("WWW-Authenticate") == "" {
				t.Fatalf("expected a bearer challenge")
			}
		})
	}
}

func TestAccessLogMiddleware_SetsRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(NewAccessLogMiddleware(nil).Middleware())
	app.Get("/", func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.Header.Get(HeaderRequestID) == "" {
		t.Fatalf("expected generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.Header.Get(HeaderRequestID) != "abc" {
		t.Fatalf("expected propagated request id")
	}
}

func TestRateLimiter(t *testing.T) {
	app := fiber.New()
	app.Use(RateLimiter(1, time.Minute))
	app.Get("/", func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil || resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("first request should pass, got %v %v", resp, err)
	}
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	body := decode(t, resp)
	if resp.StatusCode != fiber.StatusTooManyRequests || body.Message != response.MessageTooManyRequests {
		t.Fatalf("unexpected response %d %+v", resp.StatusCode, body)
	}
}
