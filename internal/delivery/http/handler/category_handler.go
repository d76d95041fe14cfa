package handler

import (
	"strconv"

	"skill-ledger/internal/delivery/http/dto"
	"skill-ledger/internal/delivery/http/middleware"
	"skill-ledger/internal/pkg/response"
	"skill-ledger/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CategoryHandler struct {
	uc usecase.RegistryUsecase
}

type createCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func NewCategoryHandler(uc usecase.RegistryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/categories")
	grp.Post("/", h.Create)
	grp.Get("/:id", h.Get)
}

func (h *CategoryHandler) Create(c fiber.Ctx) error {
	sender, err := senderFromCtx(c)
	if err != nil {
		return err
	}

	var req createCategoryRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	id, err := h.uc.CreateCategory(c.Context(), sender, usecase.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return mapLedgerError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, map[string]any{"id": id})
}

func (h *CategoryHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	cat, err := h.uc.GetCategory(c.Context(), id)
	if err != nil {
		return mapLedgerError(err)
	}

	res := dto.CategoryResponse{
		ID:          cat.ID,
		Name:        cat.Name,
		Description: cat.Description,
		CreatedBy:   string(cat.CreatedBy),
		CreatedAt:   cat.CreatedAt,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func parseIDParam(c fiber.Ctx, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	return id, nil
}
