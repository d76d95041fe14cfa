package handler

import (
	"skill-ledger/internal/pkg/response"
	"skill-ledger/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	uc usecase.RegistryUsecase
}

func NewHealthHandler(uc usecase.RegistryUsecase) *HealthHandler {
	return &HealthHandler{uc: uc}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := map[string]any{
		"status": "ok",
		"height": h.uc.CurrentHeight(),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
