package app

import (
	"fmt"
	"strings"

	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/delivery/http/routes"
	"jobmatch/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

func Bootstrap(c *Container) (*App, func() error, error) {
	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(f *fiber.App, c *Container) {
	f.Use(cors.New(cors.Config{
		AllowOrigins: c.Config.App.CORSAllowOrigins,
	}))
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
}

func registerRoutes(f *fiber.App, c *Container) {
	registry := routes.NewRegistry(routes.Deps{
		DB:       c.DB,
		Engine:   c.Engine,
		Cache:    c.Cache,
		Notifier: ws.HubNotifier{},
		Logger:   c.Logger,
	})
	registry.Register(f)

	wsHandler := ws.NewHandler(c.Hub, c.Logger)
	f.Get("/ws/notifications", wsHandler.HandleNotificationsWS)
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
