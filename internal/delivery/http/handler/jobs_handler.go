package handler

import (
	"strconv"

	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.CorpusUsecase
}

func NewJobsHandler(uc usecase.CorpusUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/jobs", h.HandleOverview)
}

func (h *JobsHandler) HandleOverview(c fiber.Ctx) error {
	sample := 3
	if s := c.Query("sample"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return middleware.NewAppError(fiber.StatusBadRequest, "invalid sample parameter", nil, err)
		}
		sample = v
	}

	out, err := h.uc.Overview(c.Context(), sample)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, "success", out)
}
