//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const Secret = "test-secret"

type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper() *JWTHelper {
	return &JWTHelper{service: jwt.NewService(Secret, time.Hour)}
}

// Service validates the tokens this helper issues.
func (h *JWTHelper) Service() *jwt.Service {
	return h.service
}

func (h *JWTHelper) Token(t *testing.T, userID uuid.UUID, role account.Role) string {
	t.Helper()
	token, _, err := h.service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) ExpiredToken(t *testing.T, userID uuid.UUID, role account.Role) string {
	t.Helper()
	token, _, err := jwt.NewService(Secret, -time.Minute).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
