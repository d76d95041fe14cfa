package handler

import (
	"skill-ledger/internal/delivery/http/dto"
	"skill-ledger/internal/delivery/http/middleware"
	"skill-ledger/internal/ledger"
	"skill-ledger/internal/pkg/response"
	"skill-ledger/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.RegistryUsecase
}

type createProfileRequest struct {
	Username     string `json:"username"`
	Bio          string `json:"bio"`
	PortfolioURL string `json:"portfolio_url"`
}

func NewProfileHandler(uc usecase.RegistryUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/profiles")
	grp.Post("/", h.Create)
	grp.Get("/:principal", h.Get)
}

func (h *ProfileHandler) Create(c fiber.Ctx) error {
	sender, err := senderFromCtx(c)
	if err != nil {
		return err
	}

	var req createProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	key, err := h.uc.CreateProfile(c.Context(), sender, usecase.CreateProfileInput{
		Username:     req.Username,
		Bio:          req.Bio,
		PortfolioURL: req.PortfolioURL,
	})
	if err != nil {
		return mapLedgerError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, map[string]any{"principal": string(key)})
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	identity := ledger.Principal(c.Params("principal"))
	if identity == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, nil)
	}

	p, err := h.uc.GetProfile(c.Context(), identity)
	if err != nil {
		return mapLedgerError(err)
	}

	res := dto.ProfileResponse{
		Principal:    string(p.Owner),
		Username:     p.Username,
		Bio:          p.Bio,
		PortfolioURL: p.PortfolioURL,
		Reputation:   p.Reputation,
		CreatedAt:    p.CreatedAt,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
