package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quizmint/quizmint/internal/auth"
	"github.com/quizmint/quizmint/internal/auth/jwt"
	"github.com/quizmint/quizmint/internal/config"
	"github.com/quizmint/quizmint/internal/db"
	"github.com/quizmint/quizmint/internal/db/repository"
	"github.com/quizmint/quizmint/internal/logging"
	"github.com/quizmint/quizmint/internal/question"
	"github.com/quizmint/quizmint/internal/question/openai"
	"github.com/quizmint/quizmint/internal/result"
	"github.com/quizmint/quizmint/internal/server"
)

// Application aggregates shared infrastructure (Mongo, optional Redis,
// HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	mongo *mongo.Client
	redis *redis.Client
	http  *http.Server
}

// New bootstraps config, logger, Mongo, optional Redis and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	mongoClient, err := db.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		return nil, err
	}
	database := mongoClient.Database(cfg.Mongo.Database)

	userRepo := repository.NewUserRepository(database)
	resultRepo := repository.NewResultRepository(database)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("ensure user indexes: %w", err)
	}
	if err := resultRepo.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("ensure result indexes: %w", err)
	}

	var redisClient *redis.Client
	var packCache question.PackCache
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		packCache = question.NewCache(redisClient, cfg.Redis.PackTTL)
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("question pack cache enabled")
	}

	var provider question.Provider
	if cfg.OpenAI.APIKey != "" {
		provider = openai.NewClient(openai.Config{
			APIKey:      cfg.OpenAI.APIKey,
			BaseURL:     cfg.OpenAI.BaseURL,
			Model:       cfg.OpenAI.Model,
			Temperature: cfg.OpenAI.Temperature,
			Timeout:     cfg.OpenAI.HTTPTimeout,
		}, logger)
	} else {
		logger.Warn().Msg("OPENAI_API_KEY not set; question generation will always serve fallback content")
	}

	questionSvc := question.NewService(provider, question.NewFallbackBank(), packCache, logger)

	authSvc := auth.NewService(userRepo, jwt.TokenConfig{
		Secret: []byte(cfg.Security.JWTSecret),
		TTL:    cfg.Security.TokenTTL,
		Issuer: cfg.Name,
	}, logger)

	resultSvc := result.NewService(resultRepo, logger)

	apiServer := server.NewHTTPServer(cfg, logger, authSvc, server.Handlers{
		Auth:     auth.NewHTTPHandlers(authSvc, logger),
		Question: question.NewHTTPHandlers(questionSvc, logger),
		Result:   result.NewHTTPHandlers(resultSvc, logger),
	})

	return &Application{
		cfg:    cfg,
		logger: logger,
		mongo:  mongoClient,
		redis:  redisClient,
		http:   apiServer,
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	if err := a.mongo.Disconnect(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("mongo shutdown error")
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error().Err(err).Msg("redis shutdown error")
		}
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}
