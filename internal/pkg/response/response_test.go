package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestDefaultMessage(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{fiber.StatusOK, MessageOK},
		{fiber.StatusTooManyRequests, MessageTooManyRequests},
		{fiber.StatusBadGateway, MessageInternalServerError},
		{fiber.StatusTeapot, MessageError},
	}
	for _, tt := range tests {
		if got := DefaultMessage(tt.status); got != tt.want {
			t.Fatalf("DefaultMessage(%d) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestError_NormalisesStatusAndMessage(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		return Error(c, 42, "", nil)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer resp.Body.Close()

	var body SemanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError || body.Status != fiber.StatusInternalServerError || body.Message != MessageInternalServerError {
		t.Fatalf("unexpected response %d %+v", resp.StatusCode, body)
	}
}
