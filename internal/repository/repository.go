package repository

import (
	"context"
	"errors"

	"tasktracker/internal/model"
)

var (
	// ErrRecordNotFound is returned when a lookup matches no row.
	ErrRecordNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when an insert violates a unique constraint.
	ErrDuplicateKey = errors.New("duplicate key")
)

// UserRepository defines persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// TaskRepository defines task persistence operations. Every lookup other
// than Create is scoped to the owning user.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	ListByUser(ctx context.Context, userID int64) ([]model.Task, error)
	FindByIDAndUser(ctx context.Context, id, userID int64) (*model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id, userID int64) error
}
