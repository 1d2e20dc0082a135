package service

import (
	"context"
	"errors"
	"fmt"

	apperrors "tasktracker/internal/errors"
	"tasktracker/internal/model"
	"tasktracker/internal/repository"
)

// UserService exposes profile operations.
type UserService interface {
	Profile(ctx context.Context, id int64) (*model.PublicUser, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService with repository.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Profile returns the public fields of user id. A token outliving its user
// resolves to apperrors.ErrUserNotFound.
func (s *userService) Profile(ctx context.Context, id int64) (*model.PublicUser, error) {
	user, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}

	public := user.Public()
	return &public, nil
}
