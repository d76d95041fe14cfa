package routes

import (
	v1 "skill-ledger/internal/delivery/http/routes/v1"
	"skill-ledger/internal/pkg/jwt"
	"skill-ledger/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, registryUC usecase.RegistryUsecase, authUC usecase.AuthUsecase, jwtSvc jwt.Service) {
	if r == nil {
		return
	}

	v1.Register(r, registryUC, authUC, jwtSvc)
}
