package routes

import (
	"log"

	"jobmatch/internal/database"
	"jobmatch/internal/delivery/http/handler"
	"jobmatch/internal/matching"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Deps holds everything the route tree needs; the registry builds the
// repositories, usecases and handlers from it.
type Deps struct {
	DB       database.DB
	Engine   *matching.Engine
	Cache    usecase.RecommendationCache
	Notifier usecase.Notifier
	Logger   *log.Logger
}

type Registry struct {
	deps   Deps
	health *handler.HealthHandler
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{deps: deps, health: handler.NewHealthHandler(deps.DB)}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.deps)
}
