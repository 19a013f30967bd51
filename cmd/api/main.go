package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/subsidy-service/internal/api/http"
	"github.com/spec-kit/subsidy-service/internal/api/http/handlers"
	"github.com/spec-kit/subsidy-service/internal/config"
	"github.com/spec-kit/subsidy-service/internal/events"
	"github.com/spec-kit/subsidy-service/internal/observability"
	"github.com/spec-kit/subsidy-service/internal/persistence"
	"github.com/spec-kit/subsidy-service/internal/repository"
	"github.com/spec-kit/subsidy-service/internal/service"
	"github.com/spec-kit/subsidy-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The server cannot operate without its schema; any store failure here aborts.
	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunSchema {
		if err := persistence.EnsureSchema(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to ensure schema", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	vendorRepo := repository.NewVendorRepository(pool)
	progressRepo := repository.NewProgressRepository(pool)
	maintenanceRepo := repository.NewMaintenanceRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo: userRepo,
	})
	subsidyService := service.NewSubsidyService(service.SubsidyDependencies{
		VendorRepo:      vendorRepo,
		ProgressRepo:    progressRepo,
		MaintenanceRepo: maintenanceRepo,
		Dispatcher:      dispatcher,
	})

	announcer := service.NewAnnouncerService(dispatcher, logger, redis, cfg.Announce)
	worker.StartAnnounceWorker(announcer)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis)
	authHandler := handlers.NewAuthHandler(authService)
	vendorsHandler := handlers.NewVendorsHandler(subsidyService)
	maintenanceHandler := handlers.NewMaintenanceHandler(subsidyService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      healthHandler,
		Auth:        authHandler,
		Vendors:     vendorsHandler,
		Maintenance: maintenanceHandler,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
