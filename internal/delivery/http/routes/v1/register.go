package v1

import (
	"skill-ledger/internal/delivery/http/handler"
	"skill-ledger/internal/delivery/http/middleware"
	"skill-ledger/internal/pkg/jwt"
	"skill-ledger/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Register mounts the v1 API surface. Everything except /auth goes through
// the auth middleware so the ledger always sees a resolved sender principal.
func Register(r fiber.Router, registryUC usecase.RegistryUsecase, authUC usecase.AuthUsecase, jwtSvc jwt.Service) {
	if r == nil {
		return
	}

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	handler.NewAuthHandler(authUC).RegisterRoutes(r.Group("/auth"))

	protected := r.Group("", authMw.Middleware())
	handler.NewProfileHandler(registryUC).RegisterRoutes(protected)
	handler.NewCategoryHandler(registryUC).RegisterRoutes(protected)
	handler.NewVerifierHandler(registryUC).RegisterRoutes(protected)
	handler.NewVerificationHandler(registryUC).RegisterRoutes(protected)
	handler.NewJobHandler(registryUC).RegisterRoutes(protected)
}
