//go:build e2e

package e2etest

import (
	"net/http"
	"testing"

	reqdto "salon-backend/internal/handler/dto/request"
	resdto "salon-backend/internal/handler/dto/response"
	"salon-backend/internal/testutil/dbtest"
	"salon-backend/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Login signs in through the real endpoint and returns the bearer token.
func Login(t *testing.T, router *gin.Engine, login string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		reqdto.LoginRequest{Login: login, Password: dbtest.DefaultPassword}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res resdto.LoginResponse
	httptest.DecodeBody(t, w, &res)
	require.NotEmpty(t, res.AccessToken)
	return res.AccessToken
}
