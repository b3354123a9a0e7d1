package handler

import (
	"context"
	"time"

	"jobmatch/internal/database"
	"jobmatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db database.DB
}

func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/health", h.HandleHealth)
}

func (h *HealthHandler) HandleHealth(c fiber.Ctx) error {
	out := fiber.Map{"database": "ok"}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			out["database"] = "unreachable"
			return response.Error(c, fiber.StatusServiceUnavailable, "degraded", out)
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
