//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/auth"
	"salon-backend/internal/handler/api"
	reqdto "salon-backend/internal/handler/dto/request"
	resdto "salon-backend/internal/handler/dto/response"
	"salon-backend/internal/testutil"
	"salon-backend/internal/testutil/builder"
	"salon-backend/internal/testutil/httptest"
	"salon-backend/internal/testutil/mock/commandsmock"
	"salon-backend/internal/testutil/mock/queriesmock"
	"salon-backend/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockAccountQueries
	userID       uuid.UUID
	token        string
}

func (s *AuthHandlerTestSuite) SetupTest() {
	engine, am, jwtHelper := newTestEngine()
	s.router = engine

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAccountQueries(s.mockCtrl)
	h := api.NewAuthHandler(s.mockCommands, s.mockQueries)

	s.userID = uuid.New()
	s.token = jwtHelper.Token(s.T(), s.userID, account.RoleCustomer)

	s.router.POST("/auth/login", h.Login)
	s.router.GET("/auth/me", am.RequireAuth(), h.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := reqdto.LoginRequest{Login: "jane.doe", Password: "s3cretpass"}

	s.Run("success: returns a bearer token", func() {
		expires := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)
		s.mockCommands.EXPECT().Login(gomock.Any(), "jane.doe", "s3cretpass").
			Return(&commands.LoginResult{AccountID: s.userID, Role: account.RoleCustomer, Token: "signed", ExpiresAt: expires}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("signed", body.AccessToken)
		s.Equal("Bearer", body.TokenType)
		s.Equal(s.userID.String(), body.AccountID)
		s.Equal("customer", body.Role)
	})

	s.Run("error: wrong credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, auth.ErrInvalidCredentials)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "invalid username/email or password")
	})

	for _, field := range []string{"login", "password"} {
		s.Run("error: missing "+field, func() {
			body := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}
}

func (s *AuthHandlerTestSuite) TestMe() {
	view := builder.NewAccountBuilder().With(func(b *builder.AccountBuilder) {
		b.ID = s.userID
		b.LoyaltyPoints = 120
	}).BuildView()

	s.Run("success: owner sees private fields", func() {
		s.mockQueries.EXPECT().
			Me(gomock.Any(), auth.Principal{UserID: s.userID, Role: account.RoleCustomer}).
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, s.token)

		var body resdto.AccountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Email, body.Email)
		s.Require().NotNil(body.LoyaltyPoints)
		s.Equal(120, *body.LoyaltyPoints)
	})

	s.Run("error: no token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: garbage token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "garbage")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}
