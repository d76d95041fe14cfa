package handler

import (
	"errors"

	"skill-ledger/internal/delivery/http/middleware"
	"skill-ledger/internal/ledger"
	"skill-ledger/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// mapLedgerError translates a rejected transaction into the HTTP surface.
// Authorization failures are 403 (the caller is known, just not allowed),
// conflicts 409, malformed inputs 400, and unmet eligibility gates 422.
func mapLedgerError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ledger.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusForbidden, "Unauthorized", nil, err)
	case errors.Is(err, ledger.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	case errors.Is(err, ledger.ErrProfileAlreadyExists):
		return middleware.NewAppError(fiber.StatusConflict, "Profile already exists", nil, err)
	case errors.Is(err, ledger.ErrDuplicateVerification):
		return middleware.NewAppError(fiber.StatusConflict, "Duplicate verification", nil, err)
	case errors.Is(err, ledger.ErrDuplicateApplication):
		return middleware.NewAppError(fiber.StatusConflict, "Duplicate application", nil, err)
	case errors.Is(err, ledger.ErrApplicationNotPending):
		return middleware.NewAppError(fiber.StatusConflict, "Application not pending", nil, err)
	case errors.Is(err, ledger.ErrInvalidScore):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid score", nil, err)
	case errors.Is(err, ledger.ErrInvalidExpiration):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid expiration", nil, err)
	case errors.Is(err, ledger.ErrInvalidDeadline):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid deadline", nil, err)
	case errors.Is(err, ledger.ErrMethodNotAllowed):
		return middleware.NewAppError(fiber.StatusBadRequest, "Method not allowed", nil, err)
	case errors.Is(err, ledger.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, ledger.ErrJobNotOpen):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Job not open", nil, err)
	case errors.Is(err, ledger.ErrInsufficientReputation):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Insufficient reputation", nil, err)
	case errors.Is(err, ledger.ErrMissingRequiredSkill):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Missing required skill", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func senderFromCtx(c fiber.Ctx) (ledger.Principal, error) {
	p, ok := c.Locals(middleware.CtxPrincipalKey).(ledger.Principal)
	if !ok || p == "" {
		return "", middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return p, nil
}
