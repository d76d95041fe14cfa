package handler

import (
	"skill-ledger/internal/delivery/http/dto"
	"skill-ledger/internal/delivery/http/middleware"
	"skill-ledger/internal/ledger"
	"skill-ledger/internal/pkg/response"
	"skill-ledger/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type VerifierHandler struct {
	uc usecase.RegistryUsecase
}

type addVerifierRequest struct {
	DisplayName    string   `json:"display_name"`
	AllowedMethods []string `json:"allowed_methods"`
}

func NewVerifierHandler(uc usecase.RegistryUsecase) *VerifierHandler {
	return &VerifierHandler{uc: uc}
}

func (h *VerifierHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/verifiers")
	grp.Put("/:principal", h.Add)
	grp.Delete("/:principal", h.Remove)
	grp.Get("/:principal", h.Get)
}

func (h *VerifierHandler) Add(c fiber.Ctx) error {
	sender, err := senderFromCtx(c)
	if err != nil {
		return err
	}

	identity := ledger.Principal(c.Params("principal"))
	if identity == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, nil)
	}

	var req addVerifierRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.AddVerifier(c.Context(), sender, usecase.AddVerifierInput{
		Identity:       identity,
		DisplayName:    req.DisplayName,
		AllowedMethods: req.AllowedMethods,
	}); err != nil {
		return mapLedgerError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"trusted": true})
}

func (h *VerifierHandler) Remove(c fiber.Ctx) error {
	sender, err := senderFromCtx(c)
	if err != nil {
		return err
	}

	identity := ledger.Principal(c.Params("principal"))
	if identity == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, nil)
	}

	if err := h.uc.RemoveVerifier(c.Context(), sender, identity); err != nil {
		return mapLedgerError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *VerifierHandler) Get(c fiber.Ctx) error {
	identity := ledger.Principal(c.Params("principal"))
	if identity == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, nil)
	}

	v, err := h.uc.GetVerifier(c.Context(), identity)
	if err != nil {
		return mapLedgerError(err)
	}

	res := dto.VerifierResponse{
		Principal:      string(v.Identity),
		DisplayName:    v.DisplayName,
		AllowedMethods: v.AllowedMethods,
		Trusted:        v.Trusted,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
