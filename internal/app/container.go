package app

import (
	"context"
	"log"
	"os"

	"skill-ledger/internal/chain"
	"skill-ledger/internal/config"
	"skill-ledger/internal/database"
	"skill-ledger/internal/database/migration"
	dbpostgres "skill-ledger/internal/database/postgres"
	"skill-ledger/internal/infrastructure/cache"
	"skill-ledger/internal/ledger"
	"skill-ledger/internal/pkg/jwt"
	"skill-ledger/internal/repository"
	"skill-ledger/internal/usecase"
	"skill-ledger/internal/ws"
)

// Container wires the process: postgres journal and accounts, the redis
// cache, the in-memory ledger with its block sequencer, and the usecases
// on top. The ledger state is rebuilt from the journal on every start.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Logger *log.Logger

	JWT        jwt.Service
	RegistryUC usecase.RegistryUsecase
	AuthUC     usecase.AuthUsecase
	WSHub      *ws.Hub
	WSHandler  *ws.Handler
}

func NewContainer(ctx context.Context, cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := (migration.Runner{}).Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	hub := ws.NewHub(logger)
	go hub.Run()
	ws.SetDefaultHub(hub)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	accounts := repository.NewPostgresAccountRepository(db)
	journal := repository.NewPostgresJournalRepository(db)

	led := ledger.New(ledger.Principal(cfg.Chain.AdminPrincipal))
	seq := chain.NewSequencer(cfg.Chain.GenesisHeight)
	registry := usecase.NewRegistryUsecase(led, seq, journal, redisCache, logger)
	if err := registry.Replay(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Container{
		Config:     cfg,
		DB:         db,
		Cache:      redisCache,
		Logger:     logger,
		JWT:        jwtSvc,
		RegistryUC: registry,
		AuthUC:     usecase.NewAuthUsecase(accounts, jwtSvc),
		WSHub:      hub,
		WSHandler:  ws.NewHandler(hub, logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
