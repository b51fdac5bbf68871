package middleware

import (
	"errors"
	"strings"

	"jobbridge/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// Locals set for requests in the protected group.
const (
	CtxUserIDKey  = "user_id"
	CtxEmailKey   = "email"
	CtxTokenIDKey = "token_id"
)

// AuthMiddleware admits requests carrying a valid operator access token.
type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := BearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return unauthorized(c, "Unauthorized", nil)
		}

		// refresh tokens only work against /auth/refresh
		claims, err := m.jwt.ValidateAccessToken(token)
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return unauthorized(c, "Token expired", err)
		case err != nil:
			return unauthorized(c, "Invalid token", err)
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxEmailKey, claims.Email)
		c.Locals(CtxTokenIDKey, claims.ID)
		return c.Next()
	}
}

func unauthorized(c fiber.Ctx, msg string, cause error) error {
	c.Set("WWW-Authenticate", `Bearer realm="jobbridge"`)
	return NewAppError(fiber.StatusUnauthorized, msg, nil, cause)
}

// OperatorID returns the authenticated operator, or uuid.Nil outside the
// protected group.
func OperatorID(c fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(CtxUserIDKey).(uuid.UUID)
	return id
}

// OperatorEmail returns the email carried by the access token.
func OperatorEmail(c fiber.Ctx) string {
	email, _ := c.Locals(CtxEmailKey).(string)
	return email
}

// BearerToken extracts the token from an "Authorization: Bearer <t>" header.
func BearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
