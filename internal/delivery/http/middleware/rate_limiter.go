package middleware

import (
	"time"

	"jobbridge/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
)

// RateLimiter limits each client IP to max requests per expiration window.
// max <= 0 disables limiting.
func RateLimiter(max int, expiration time.Duration) fiber.Handler {
	if expiration == 0 {
		expiration = time.Minute
	}
	return limiter.New(limiter.Config{
		Next: func(c fiber.Ctx) bool {
			return max <= 0
		},
		Max:        max,
		Expiration: expiration,
		LimitReached: func(c fiber.Ctx) error {
			return response.Error(c, fiber.StatusTooManyRequests, response.MessageTooManyRequests, nil)
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
