package handler

import (
	"errors"

	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AdminHandler struct {
	uc usecase.CorpusUsecase
}

func NewAdminHandler(uc usecase.CorpusUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/corpus/refresh", h.HandleCorpusRefresh)
}

func (h *AdminHandler) HandleCorpusRefresh(c fiber.Ctx) error {
	info, err := h.uc.Refresh(c.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrNoJobsFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "no jobs available to fit", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, "corpus refitted", info)
}
