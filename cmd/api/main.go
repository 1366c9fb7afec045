// @title                       Millets Cafe API
// @version                     1.0
// @description                 Menu, orders, table bookings and contact messages for the cafe.
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

	_ "github.com/Shubham-3256/millets-cafe/docs"
	"github.com/Shubham-3256/millets-cafe/internal/api"
	"github.com/Shubham-3256/millets-cafe/internal/api/handler"
	"github.com/Shubham-3256/millets-cafe/internal/core/service"
	"github.com/Shubham-3256/millets-cafe/internal/infrastructure/config"
	mongodb "github.com/Shubham-3256/millets-cafe/internal/infrastructure/db/mongo"
	redisdb "github.com/Shubham-3256/millets-cafe/internal/infrastructure/db/redis"
	"github.com/Shubham-3256/millets-cafe/pkg/logger"
)

func main() {
	ctx := context.Background()

	// --- Configuration ---
	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "millets-cafe-api",
	})

	// --- Storage ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	// --- Repositories ---
	idem := redisdb.NewIdempotencyStore(rdb, cfg.IdempotencyTTL)

	// --- Services ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	services := api.Services{
		Auth:     service.NewAuthService(mongodb.NewAuthRepository(db), tokens, cfg.BcryptCost, logger.Component("auth")),
		Tokens:   tokens,
		Orders:   service.NewOrderService(mongodb.NewOrderRepository(db), idem, logger.Component("orders")),
		Bookings: service.NewBookingService(mongodb.NewBookingRepository(db), idem, logger.Component("bookings")),
		Messages: service.NewMessageService(mongodb.NewMessageRepository(db), idem, logger.Component("messages")),
		Workflow: service.NewWorkflowService(mongodb.NewWorkflowRepository(db), logger.Component("workflow")),
		Menu:     service.NewMenuService(mongodb.NewMenuRepository(db), logger.Component("menu")),
		Stats:    service.NewStatsService(mongodb.NewStatsRepository(db)),
	}

	// --- HTTP ---
	e := api.NewRouter(services, logger.Component("http"), api.Options{
		CORSOrigins: cfg.CORSOrigins,
		Readiness: map[string]handler.Check{
			"mongodb": handler.MongoCheck(db),
			"redis":   handler.RedisCheck(rdb),
		},
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server exited")
}
