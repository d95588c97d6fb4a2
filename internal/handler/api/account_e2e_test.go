//go:build e2e

package api_test

import (
	"net/http"
	"testing"

	reqdto "salon-backend/internal/handler/dto/request"
	resdto "salon-backend/internal/handler/dto/response"
	"salon-backend/internal/testutil/builder"
	"salon-backend/internal/testutil/dbtest"
	"salon-backend/internal/testutil/e2etest"
	"salon-backend/internal/testutil/httptest"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AccountSuite struct {
	e2etest.SharedSuite
}

func TestAccountSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AccountSuite))
}

func (s *AccountSuite) TestSignupAndLogin() {
	s.Run("customer signs up and logs in with username or email", func() {
		t := s.T()
		body := builder.NewAccountBuilder().With(func(b *builder.AccountBuilder) {
			b.Username = "carol"
			b.Email = "carol@example.com"
			b.Password = dbtest.DefaultPassword
		}).BuildCreateRequestDTO()

		res := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/customers", body, "")
		require.Equal(t, http.StatusCreated, res.Code, res.Body.String())

		for _, login := range []string{"carol", "carol@example.com"} {
			token := e2etest.Login(t, s.Router, login)
			me := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/auth/me", nil, token)
			require.Equal(t, http.StatusOK, me.Code, me.Body.String())

			var account resdto.AccountResponse
			httptest.DecodeBody(t, me, &account)
			require.Equal(t, "carol", account.Username)
			require.Equal(t, "customer", account.Role)
			require.NotNil(t, account.LoyaltyPoints, "owner sees private fields")
		}
	})

	s.Run("duplicate username conflicts", func() {
		t := s.T()
		dbtest.CreateAccount(t, s.DB, "customer", "dave", nil)
		body := builder.NewAccountBuilder().With(func(b *builder.AccountBuilder) {
			b.Username = "dave"
			b.Email = "someone-else@example.com"
		}).BuildCreateRequestDTO()

		res := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/customers", body, "")
		httptest.AssertErrorResponse(t, res, http.StatusConflict, "username or email is already in use")
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "accounts", "username = $1", "dave"))
	})

	s.Run("wrong password is unauthorized", func() {
		t := s.T()
		dbtest.CreateAccount(t, s.DB, "customer", "erin", nil)

		res := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/login",
			reqdto.LoginRequest{Login: "erin", Password: "not-the-password"}, "")
		httptest.AssertErrorResponse(t, res, http.StatusUnauthorized, "invalid username/email or password")
	})
}

func (s *AccountSuite) TestStylistVisibility() {
	s.Run("anonymous readers do not see stylist contact details", func() {
		t := s.T()
		branchID := dbtest.CreateBranch(t, s.DB, "Tampines")
		stylistID := dbtest.CreateAccount(t, s.DB, "stylist", "stella", &branchID)

		res := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/stylists/"+stylistID.String(), nil, "")
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())
		var account resdto.AccountResponse
		httptest.DecodeBody(t, res, &account)
		require.Empty(t, account.Email)

		token := e2etest.Login(t, s.Router, "stella")
		res = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/stylists/"+stylistID.String(), nil, token)
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())
		httptest.DecodeBody(t, res, &account)
		require.Equal(t, "stella@example.com", account.Email)
	})
}
