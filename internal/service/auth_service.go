package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tasktracker/internal/auth"
	apperrors "tasktracker/internal/errors"
	"tasktracker/internal/model"
	"tasktracker/internal/repository"
)

// AuthService handles authentication operations.
type AuthService interface {
	Register(ctx context.Context, in model.RegisterInput) (user *model.User, token string, err error)
	Login(ctx context.Context, in model.LoginInput) (token string, err error)
	Logout(ctx context.Context, claims *auth.Claims) error
}

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) (bool, error)
}

// TokenIssuer signs identity tokens.
type TokenIssuer interface {
	IssueToken(identity model.Identity) (string, error)
}

type authService struct {
	userRepo      repository.UserRepository
	hasher        PasswordHasher
	tokens        TokenIssuer
	tokenStore    auth.TokenStoreInterface
	revocationTTL time.Duration
}

// NewAuthService creates a new authentication service. revocationTTL bounds
// how long a logged-out token without an expiry stays revoked.
func NewAuthService(
	userRepo repository.UserRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	tokenStore auth.TokenStoreInterface,
	revocationTTL time.Duration,
) AuthService {
	return &authService{
		userRepo:      userRepo,
		hasher:        hasher,
		tokens:        tokens,
		tokenStore:    tokenStore,
		revocationTTL: revocationTTL,
	}
}

// Register creates a user with a hashed password and returns it with a
// freshly issued token.
func (s *authService) Register(ctx context.Context, in model.RegisterInput) (*model.User, string, error) {
	existing, err := s.userRepo.FindByEmail(ctx, in.Email)
	if err == nil && existing != nil {
		return nil, "", apperrors.ErrUserAlreadyRegistered
	}
	if err != nil && !errors.Is(err, repository.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hashed,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration of the same email.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, "", apperrors.ErrUserAlreadyRegistered
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.IssueToken(user.Identity())
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials and returns a token. An unknown email and a wrong
// password yield the same error.
func (s *authService) Login(ctx context.Context, in model.LoginInput) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, in.Email)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return "", apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}

	ok, err := s.hasher.Verify(in.Password, user.PasswordHash)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(user.Identity())
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// Logout revokes the presented token until it would have expired anyway.
func (s *authService) Logout(ctx context.Context, claims *auth.Claims) error {
	ttl := s.revocationTTL
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}

	if err := s.tokenStore.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}
