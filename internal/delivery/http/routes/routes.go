package routes

import (
	"skill-ledger/internal/delivery/http/handler"
	"skill-ledger/internal/pkg/jwt"
	"skill-ledger/internal/usecase"
	"skill-ledger/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	registryUC usecase.RegistryUsecase
	authUC     usecase.AuthUsecase
	jwtSvc     jwt.Service
	wsHandler  *ws.Handler
}

func NewRegistry(registryUC usecase.RegistryUsecase, authUC usecase.AuthUsecase, jwtSvc jwt.Service, wsHandler *ws.Handler) *Registry {
	return &Registry{registryUC: registryUC, authUC: authUC, jwtSvc: jwtSvc, wsHandler: wsHandler}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	handler.NewHealthHandler(r.registryUC).RegisterRoutes(app)
	if r.wsHandler != nil {
		app.Get("/ws", r.wsHandler.HandleEventsWS)
	}

	RegisterV1(app.Group("/v1"), r.registryUC, r.authUC, r.jwtSvc)
}
