// Package middleware holds the echo middleware shared by the API routes:
// the token gate, body validation, rate limiting and access logging.
package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"tasktracker/internal/auth"
	apperrors "tasktracker/internal/errors"
	"tasktracker/internal/model"
)

// TokenHeader carries the identity token on requests and on registration
// responses.
const TokenHeader = "x-auth-token"

const claimsKey = "claims"

// errRevocationCheck marks failures of the revocation store.
var errRevocationCheck = errors.New("check revocation")

// TokenVerifier verifies identity tokens.
type TokenVerifier interface {
	VerifyToken(token string) (*auth.Claims, error)
}

// RevocationChecker reports logged-out tokens.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Auth rejects requests without a usable token in TokenHeader and stores the
// verified claims on the context. A missing token fails with
// apperrors.ErrUnauthenticated; anything else wrong with it fails with
// apperrors.ErrInvalidToken. A failing revocation check is returned as is.
// revocations may be nil.
func Auth(verifier TokenVerifier, revocations RevocationChecker) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  claimsKey,
		TokenLookup: "header:" + TokenHeader,
		ParseTokenFunc: func(c echo.Context, raw string) (interface{}, error) {
			if strings.TrimSpace(raw) == "" {
				return nil, apperrors.ErrUnauthenticated
			}
			claims, err := verifier.VerifyToken(raw)
			if err != nil {
				return nil, err
			}
			if revocations != nil {
				revoked, err := revocations.IsRevoked(c.Request().Context(), claims.ID)
				if err != nil {
					return nil, fmt.Errorf("%w: %w", errRevocationCheck, err)
				}
				if revoked {
					return nil, apperrors.ErrTokenRevoked
				}
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if strings.TrimSpace(c.Request().Header.Get(TokenHeader)) == "" {
				return apperrors.ErrUnauthenticated
			}
			if errors.Is(err, errRevocationCheck) {
				return err
			}
			return fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
		},
	})
}

// ClaimsFrom returns the claims stored by Auth.
func ClaimsFrom(c echo.Context) (*auth.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*auth.Claims)
	return claims, ok && claims != nil
}

// IdentityFrom returns the caller's identity stored by Auth.
func IdentityFrom(c echo.Context) (model.Identity, error) {
	claims, ok := ClaimsFrom(c)
	if !ok {
		return model.Identity{}, apperrors.ErrUnauthenticated
	}
	return claims.Identity(), nil
}
