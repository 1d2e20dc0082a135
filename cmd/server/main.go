package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tasktracker/docs" // swagger docs
	"tasktracker/internal/auth"
	"tasktracker/internal/cache"
	"tasktracker/internal/config"
	"tasktracker/internal/db"
	"tasktracker/internal/handler"
	"tasktracker/internal/logger"
	"tasktracker/internal/middleware"
	"tasktracker/internal/router"
	"tasktracker/internal/service"
	"tasktracker/internal/validation"
)

const shutdownTimeout = 10 * time.Second

// @title Task Tracker API
// @version 1.0
// @description Authenticated personal task tracking API.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey TokenAuth
// @in header
// @name x-auth-token
// @description Identity token returned by registration or login.
func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	zapLogger, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := db.Open(cfg)
	if err != nil {
		zapLogger.Fatal("record store init", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer store.Close() //nolint:errcheck

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if !cacheClient.Enabled() {
		zapLogger.Warn("REDIS_ADDR not set, logout will answer 503")
	} else if err := cacheClient.Ping(ctx); err != nil {
		zapLogger.Warn("redis unreachable, logout fails until it recovers", zap.Error(err))
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)
	tokenStore := auth.NewTokenStore(cacheClient)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	// Initialize services
	authService := service.NewAuthService(store.Users, hasher, jwtService, tokenStore, cfg.RevocationTTL)
	userService := service.NewUserService(store.Users)
	taskService := service.NewTaskService(store.Tasks)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.Run(ctx)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, router.Deps{
		Logger:      zapLogger,
		Verifier:    jwtService,
		Revocations: tokenStore,
		Limiter:     limiter,
		Validator:   validation.New(),
		UserHandler: handler.NewUserHandler(authService, userService),
		AuthHandler: handler.NewAuthHandler(authService),
		TaskHandler: handler.NewTaskHandler(taskService),
	})

	go func() {
		addr := ":" + cfg.ServerPort
		zapLogger.Info("starting HTTP server",
			zap.String("addr", addr),
			zap.String("store", cfg.StoreDriver),
			zap.String("swagger", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html"),
		)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("server start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server shutdown", zap.Error(err))
	}
}
