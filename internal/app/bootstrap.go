package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jobbridge/internal/config"
	"jobbridge/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

// bodyLimit covers a multipart registration with several attachments.
const bodyLimit = 50 << 20

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(cfg config.Config, c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:      cfg.App.AppName,
		BodyLimit:    bodyLimit,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	registerGlobalMiddleware(f, cfg, c)
	if c != nil && c.Routes != nil {
		c.Routes.Register(f)
	}

	return &App{Fiber: f, Container: c}
}

func Bootstrap(ctx context.Context, cfg config.Config, c *Container) (*App, func() error, error) {
	if c == nil {
		var err error
		c, err = NewContainer(ctx, cfg, nil)
		if err != nil {
			return nil, nil, err
		}
	}
	app := New(cfg, c)
	return app, c.Close, nil
}

// registerGlobalMiddleware installs the access log outermost so it records
// the status the error middleware rendered.
func registerGlobalMiddleware(app *fiber.App, cfg config.Config, c *Container) {
	if app == nil {
		return
	}

	log := c.zapLogger()

	app.Use(middleware.NewAccessLogMiddleware(log.Named("http")).Middleware())
	app.Use(middleware.NewErrorMiddleware(log.Named("http")).Middleware())

	corsCfg := cors.Config{AllowOrigins: []string{"*"}}
	if len(cfg.App.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.App.CORSOrigins
	}
	app.Use(cors.New(corsCfg))
	app.Use(middleware.RateLimiter(cfg.App.RateLimitMax, time.Minute))
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
