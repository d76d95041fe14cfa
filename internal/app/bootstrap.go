package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skill-ledger/internal/config"
	"skill-ledger/internal/delivery/http/middleware"
	"skill-ledger/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container, replays the journal, and mounts the HTTP
// surface. The returned cleanup closes the pool and the cache client.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	c, err := NewContainer(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	registerGlobalMiddleware(f)

	routes.NewRegistry(c.RegistryUC, c.AuthUC, c.JWT, c.WSHandler).Register(f)

	app := &App{Fiber: f, Container: c}
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(nil).Middleware())
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
