package v1

import (
	"log"

	"jobmatch/internal/database"
	"jobmatch/internal/delivery/http/handler"
	"jobmatch/internal/matching"
	"jobmatch/internal/repository"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	DB       database.DB
	Engine   *matching.Engine
	Cache    usecase.RecommendationCache
	Notifier usecase.Notifier
	Logger   *log.Logger
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	jobRepo := repository.NewPostgresJobRepository(deps.DB)
	profileRepo := repository.NewPostgresProfileRepository(deps.DB)
	notificationRepo := repository.NewPostgresNotificationRepository(deps.DB)

	recommendationUC := usecase.NewRecommendationUsecase(
		deps.Engine,
		jobRepo,
		profileRepo,
		notificationRepo,
		deps.Cache,
		deps.Notifier,
		deps.Logger,
	)
	corpusUC := usecase.NewCorpusUsecase(deps.Engine, jobRepo, deps.Cache, deps.Logger)

	recommendationHandler := handler.NewRecommendationHandler(recommendationUC)
	jobsHandler := handler.NewJobsHandler(corpusUC)
	adminHandler := handler.NewAdminHandler(corpusUC)

	recommendationHandler.RegisterRoutes(r)
	jobsHandler.RegisterRoutes(r)
	adminHandler.RegisterRoutes(r.Group("/admin"))
}
