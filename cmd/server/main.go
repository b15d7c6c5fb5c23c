// @title                       Clan Gateway API
// @version                     1.0
// @description                 Read access to mirrored Destiny clans and rosters.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/clanops/clan-gateway/internal/api"
	"github.com/clanops/clan-gateway/internal/api/handler"
	"github.com/clanops/clan-gateway/internal/core/service"
	mongodb "github.com/clanops/clan-gateway/internal/infrastructure/db/mongo"
	redisdb "github.com/clanops/clan-gateway/internal/infrastructure/db/redis"
	"github.com/clanops/clan-gateway/internal/infrastructure/queue"
	"github.com/clanops/clan-gateway/internal/pkg/config"
	"github.com/clanops/clan-gateway/pkg/logger"
)

var version = "dev"

const shutdownTimeout = 15 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad(ctx)
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "clan-gateway",
		Version: version,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  "clan-gateway",
	})
	if err != nil {
		return err
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	clanRepo := mongodb.NewClanRepository(db)
	operatorRepo := mongodb.NewOperatorRepository(db)
	if err := clanRepo.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := operatorRepo.EnsureIndexes(ctx); err != nil {
		return err
	}

	// --- Services ---
	cache := redisdb.NewCachedRequester(rdb, clanRepo, cfg.Redis.CacheTTL, logger.Component("member_cache"))
	dedup := redisdb.NewDedupChecker(rdb, cfg.Redis.DedupTTL)

	clanService := service.NewClanService(clanRepo, cache, logger.Component("clan_service"))
	snapshotService := service.NewSnapshotService(clanRepo, cache, dedup, logger.Component("snapshot_service"))
	authService := service.NewAuthService(operatorRepo, cfg.JWTSecret, cfg.TokenTTL)

	// Workers outlive the signal so Stop can drain queued snapshots.
	dispatcher := queue.NewDispatcher(cfg.SnapshotWorkers, snapshotService, logger.Component("dispatcher"))
	dispatcher.Start(context.WithoutCancel(ctx))

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		ClanService: clanService,
		AuthService: authService,
		Dispatcher:  dispatcher,
		HealthChecks: map[string]handler.Pinger{
			"mongodb": mongodb.Pinger{Client: mongoClient},
			"redis":   redisdb.Pinger{Client: rdb},
		},
		JWTSecret:      cfg.JWTSecret,
		BungieClientID: cfg.BungieClientID,
		Logger:         log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}

	dispatcher.Stop()
	log.Info().Msg("snapshot queue drained")
	return nil
}
