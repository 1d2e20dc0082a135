package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tasktracker/internal/errors"
	"tasktracker/internal/model"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", 0)
	identity := model.Identity{ID: 42, Email: "ada@example.com"}

	token, err := svc.IssueToken(identity)
	require.NoError(t, err)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, identity, claims.Identity())
	assert.NotEmpty(t, claims.ID)
	assert.NotNil(t, claims.IssuedAt)
	assert.Nil(t, claims.ExpiresAt)
}

func TestJWTService_UniqueTokenIDs(t *testing.T) {
	svc := NewJWTService("test-secret", 0)
	identity := model.Identity{ID: 1, Email: "a@example.com"}

	t1, err := svc.IssueToken(identity)
	require.NoError(t, err)
	t2, err := svc.IssueToken(identity)
	require.NoError(t, err)

	c1, err := svc.VerifyToken(t1)
	require.NoError(t, err)
	c2, err := svc.VerifyToken(t2)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestJWTService_IssueWithoutID(t *testing.T) {
	svc := NewJWTService("test-secret", 0)

	_, err := svc.IssueToken(model.Identity{Email: "a@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrMissingIdentity)
}

func TestJWTService_TTL(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.IssueToken(model.Identity{ID: 1, Email: "a@example.com"})
	require.NoError(t, err)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_VerifyRejects(t *testing.T) {
	svc := NewJWTService("test-secret", 0)
	valid, err := svc.IssueToken(model.Identity{ID: 1, Email: "a@example.com"})
	require.NoError(t, err)

	otherKey, err := NewJWTService("other-secret", 0).IssueToken(model.Identity{ID: 1, Email: "a@example.com"})
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: 1,
		Email:  "a@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	noID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Email: "a@example.com",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID: 1,
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"garbage", "not.a.token"},
		{"tampered", valid + "x"},
		{"wrong key", otherKey},
		{"expired", expired},
		{"missing id", noID},
		{"none algorithm", noneAlg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.VerifyToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
		})
	}
}
