package handler

import (
	"skill-ledger/internal/delivery/http/dto"
	"skill-ledger/internal/delivery/http/middleware"
	"skill-ledger/internal/ledger"
	"skill-ledger/internal/pkg/response"
	"skill-ledger/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type VerificationHandler struct {
	uc usecase.RegistryUsecase
}

type verifySkillRequest struct {
	Subject     string  `json:"subject"`
	SkillName   string  `json:"skill_name"`
	CategoryID  uint64  `json:"category_id"`
	Method      string  `json:"method"`
	Score       uint64  `json:"score"`
	EvidenceURL string  `json:"evidence_url"`
	Expiration  *uint64 `json:"expiration"`
}

func NewVerificationHandler(uc usecase.RegistryUsecase) *VerificationHandler {
	return &VerificationHandler{uc: uc}
}

func (h *VerificationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/verifications")
	grp.Post("/", h.Verify)
	grp.Delete("/:id", h.Revoke)
	grp.Get("/:subject/:id", h.Get)
}

func (h *VerificationHandler) Verify(c fiber.Ctx) error {
	sender, err := senderFromCtx(c)
	if err != nil {
		return err
	}

	var req verifySkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	id, err := h.uc.VerifySkill(c.Context(), sender, ledger.VerifySkillInput{
		Subject:     ledger.Principal(req.Subject),
		SkillName:   req.SkillName,
		CategoryID:  req.CategoryID,
		Method:      req.Method,
		Score:       req.Score,
		EvidenceURL: req.EvidenceURL,
		Expiration:  req.Expiration,
	})
	if err != nil {
		return mapLedgerError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, map[string]any{"id": id})
}

func (h *VerificationHandler) Revoke(c fiber.Ctx) error {
	sender, err := senderFromCtx(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.RevokeVerification(c.Context(), sender, id); err != nil {
		return mapLedgerError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *VerificationHandler) Get(c fiber.Ctx) error {
	subject := ledger.Principal(c.Params("subject"))
	if subject == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, nil)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	view, err := h.uc.GetVerification(c.Context(), subject, id)
	if err != nil {
		return mapLedgerError(err)
	}

	res := dto.VerificationResponse{
		ID:               view.ID,
		Subject:          string(view.Subject),
		SkillName:        view.SkillName,
		CategoryID:       view.CategoryID,
		Method:           view.Method,
		Score:            view.Score,
		EvidenceURL:      view.EvidenceURL,
		Expiration:       view.Expiration,
		Verifier:         string(view.Verifier),
		VerifiedAt:       view.VerifiedAt,
		Status:           string(view.Status),
		IsCurrentlyValid: view.IsCurrentlyValid,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
