package app

import (
	"context"
	"log"
	"time"

	"jobmatch/internal/config"
	"jobmatch/internal/database"
	dbpostgres "jobmatch/internal/database/postgres"
	"jobmatch/internal/infrastructure/cache"
	"jobmatch/internal/matching"
	"jobmatch/internal/repository"
	"jobmatch/internal/ws"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Engine *matching.Engine
	Hub    *ws.Hub
	Logger *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.Default()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	hub := ws.NewHub(logger)
	ws.SetDefaultHub(hub)

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(logger),
		Engine: matching.NewEngine(cfg.EngineOptions()),
		Hub:    hub,
		Logger: logger,
	}, nil
}

// FitCorpus loads every stored job and fits the engine once at startup. An
// empty corpus is not fatal; the engine stays unfitted until jobs arrive.
func (c *Container) FitCorpus(ctx context.Context) (int, error) {
	jobs, err := repository.NewPostgresJobRepository(c.DB).ListAll(ctx)
	if err != nil {
		return 0, err
	}
	state, err := c.Engine.Refit(jobs)
	if err != nil {
		return 0, err
	}
	return state.JobCount(), nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
