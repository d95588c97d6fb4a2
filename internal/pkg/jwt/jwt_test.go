//go:build unit

package jwt

import (
	"testing"
	"time"

	"salon-backend/internal/domain/account"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := NewService("secret", time.Hour)
	userID := uuid.New()

	token, expiresAt, err := svc.GenerateToken(userID, account.RoleStylist)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "stylist", claims.Role)
}

func TestService_ValidateToken(t *testing.T) {
	t.Run("expired token", func(t *testing.T) {
		svc := NewService("secret", time.Minute)
		svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, _, err := svc.GenerateToken(uuid.New(), account.RoleCustomer)
		require.NoError(t, err)

		svc.now = time.Now
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := NewService("one", time.Hour).GenerateToken(uuid.New(), account.RoleCustomer)
		require.NoError(t, err)

		_, err = NewService("two", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		token := gojwt.NewWithClaims(gojwt.SigningMethodNone, Claims{UserID: uuid.New(), Role: "admin"})
		signed, err := token.SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = NewService("secret", time.Hour).ValidateToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := NewService("secret", time.Hour).ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
