package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	apperrors "tasktracker/internal/errors"
	"tasktracker/internal/model"
)

// Claims represents JWT claims. The payload is the user's id and email plus
// issuance metadata (jti, iat and, when a TTL is configured, exp).
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Identity returns the subject carried by the claims.
func (c *Claims) Identity() model.Identity {
	return model.Identity{ID: c.UserID, Email: c.Email}
}

// JWTService handles JWT token generation and validation.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService creates a new JWT service with the given secret. A zero ttl
// issues tokens without an expiry.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// IssueToken signs a token for identity. It fails with
// apperrors.ErrMissingIdentity when the identity has not been persisted yet.
func (s *JWTService) IssueToken(identity model.Identity) (string, error) {
	if identity.ID == 0 {
		return "", apperrors.ErrMissingIdentity
	}

	now := time.Now()
	claims := &Claims{
		UserID: identity.ID,
		Email:  identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       generateTokenID(),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates a token and returns its claims. Every failure wraps
// apperrors.ErrInvalidToken.
func (s *JWTService) VerifyToken(tokenString string) (*Claims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, fmt.Errorf("%w: empty token", apperrors.ErrInvalidToken)
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.UserID == 0 {
		return nil, fmt.Errorf("%w: missing id claim", apperrors.ErrInvalidToken)
	}

	return claims, nil
}

// generateTokenID generates a unique token ID used for revocation.
func generateTokenID() string {
	return uuid.New().String()
}
