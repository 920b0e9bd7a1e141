// @title                      Todo API
// @version                    1.0
// @description                Task tracking with managers, comments and role-based administration.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
// @description                Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/plannr/todo-api/internal/api"
	"github.com/plannr/todo-api/internal/api/handler"
	"github.com/plannr/todo-api/internal/core/service"
	mongostore "github.com/plannr/todo-api/internal/infrastructure/db/mongo"
	redisstore "github.com/plannr/todo-api/internal/infrastructure/db/redis"
	"github.com/plannr/todo-api/internal/infrastructure/queue"
	"github.com/plannr/todo-api/internal/infrastructure/weather"
	"github.com/plannr/todo-api/internal/pkg/config"
	"github.com/plannr/todo-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "todo-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(dctx); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect")
		}
	}()

	if err := mongostore.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure indexes")
	}

	rdb, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close")
		}
	}()

	// --- Repositories ---
	seq := mongostore.NewSequence(db)
	users := mongostore.NewUserRepository(db, seq)
	todos := mongostore.NewTodoRepository(db, seq)
	managers := mongostore.NewManagerRepository(db, seq)
	comments := mongostore.NewCommentRepository(db, seq)

	// --- Access log dispatcher ---
	dispatchCtx, cancelDispatch := context.WithCancel(context.Background())
	defer cancelDispatch()
	dispatcher := queue.NewDispatcher(cfg.AccessLog.Workers, mongostore.NewAccessLogRepository(db), logger.Component("access_log"))
	dispatcher.Start(dispatchCtx)

	// --- Services ---
	weatherProvider := redisstore.NewWeatherCache(
		weather.NewClient(cfg.Weather.URL, cfg.Weather.Timeout),
		rdb,
		cfg.Weather.CacheTTL,
		logger.Component("weather"),
	)
	hasher := service.NewBcryptHasher(bcrypt.DefaultCost)
	tokens := service.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	svcLog := logger.Component("service")

	e := api.NewRouter(api.Deps{
		Auth:      service.NewAuthService(users, hasher, tokens, svcLog),
		Todos:     service.NewTodoService(todos, weatherProvider, svcLog),
		Managers:  service.NewManagerService(users, todos, managers, svcLog),
		Comments:  service.NewCommentService(todos, managers, comments, svcLog),
		Users:     service.NewUserService(users, hasher, svcLog),
		Admin:     service.NewAdminService(users, comments, svcLog),
		Tokens:    tokens,
		AccessLog: dispatcher,
		Health: map[string]handler.Pinger{
			"mongodb": handler.PingerFunc(func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }),
			"redis":   handler.PingerFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() }),
		},
		Log: logger.Component("http"),
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
	}
	cancelDispatch()
}
