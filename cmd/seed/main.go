package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.uber.org/zap"

	"tasktracker/internal/auth"
	"tasktracker/internal/config"
	"tasktracker/internal/db"
	apperrors "tasktracker/internal/errors"
	"tasktracker/internal/logger"
	"tasktracker/internal/model"
	"tasktracker/internal/service"
)

const (
	demoEmail    = "demo@example.com"
	demoPassword = "DemoPass123"
)

var demoTasks = []model.TaskInput{
	{Title: "Read the API docs", Content: "Open /swagger/index.html and try each route.", Status: model.StatusComplete, Priority: model.PriorityLow},
	{Title: "Plan the sprint", Content: "Pick the top three items from the backlog.", Status: model.StatusInProgress, Priority: model.PriorityHigh},
	{Title: "Fix the flaky build", Content: "The integration job times out on cold caches.", Status: model.StatusNotStarted, Priority: model.PriorityUrgent},
}

// Seeds a demo user and a handful of tasks into the configured record store. Running it
// again reuses the existing demo user and adds nothing.
func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "seed-only-secret"
	}

	zapLogger, err := logger.New(cfg.LogLevel, "development")
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	store, err := db.Open(cfg)
	if err != nil {
		zapLogger.Fatal("record store init", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer store.Close() //nolint:errcheck

	authService := service.NewAuthService(
		store.Users,
		auth.NewPasswordHasher(cfg.BcryptCost),
		auth.NewJWTService(cfg.JWTSecret, cfg.JWTTTL),
		auth.NewTokenStore(nil),
		cfg.RevocationTTL,
	)

	ctx := context.Background()
	created, err := seed(ctx, authService, service.NewTaskService(store.Tasks))
	if err != nil {
		zapLogger.Fatal("seed", zap.Error(err))
	}

	zapLogger.Info("seed completed",
		zap.String("email", demoEmail),
		zap.String("password", demoPassword),
		zap.Int("tasks_created", created),
	)
}

func seed(ctx context.Context, authService service.AuthService, tasks service.TaskService) (int, error) {
	user, _, err := authService.Register(ctx, model.RegisterInput{
		FirstName: "Demo",
		LastName:  "User",
		Email:     demoEmail,
		Password:  demoPassword,
	})
	if errors.Is(err, apperrors.ErrUserAlreadyRegistered) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("register demo user: %w", err)
	}

	for i, in := range demoTasks {
		if _, err := tasks.Create(ctx, user.ID, in); err != nil {
			return i, fmt.Errorf("create task %q: %w", in.Title, err)
		}
	}
	return len(demoTasks), nil
}
