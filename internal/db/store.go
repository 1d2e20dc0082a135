package db

import (
	"fmt"

	"tasktracker/internal/config"
	"tasktracker/internal/repository"
)

// Store bundles the repositories of one record store connection.
type Store struct {
	Users repository.UserRepository
	Tasks repository.TaskRepository
	Close func() error
}

// Open connects the record store selected by cfg.StoreDriver and brings its
// schema up to date.
func Open(cfg *config.Config) (*Store, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		sqlDB, err := NewPostgres(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := RunMigrations(sqlDB); err != nil {
			sqlDB.Close()
			return nil, err
		}
		return &Store{
			Users: repository.NewPostgresUserRepository(sqlDB),
			Tasks: repository.NewPostgresTaskRepository(sqlDB),
			Close: sqlDB.Close,
		}, nil

	case config.DriverMySQL:
		gormDB, err := NewMySQL(cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, fmt.Errorf("mysql pool: %w", err)
		}
		if err := Migrate(gormDB); err != nil {
			sqlDB.Close()
			return nil, err
		}
		return &Store{
			Users: repository.NewUserRepository(gormDB),
			Tasks: repository.NewTaskRepository(gormDB),
			Close: sqlDB.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}
