//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"salon-backend/internal/domain/account"
	domreview "salon-backend/internal/domain/review"
	"salon-backend/internal/handler/api"
	resdto "salon-backend/internal/handler/dto/response"
	"salon-backend/internal/testutil"
	"salon-backend/internal/testutil/builder"
	"salon-backend/internal/testutil/httptest"
	"salon-backend/internal/testutil/mock/commandsmock"
	"salon-backend/internal/testutil/mock/queriesmock"
	"salon-backend/internal/usecase/commands"
	"salon-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	customerID   uuid.UUID
	token        string
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	engine, am, jwtHelper := newTestEngine()
	s.router = engine

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	h := api.NewReviewHandler(s.mockCommands, s.mockQueries)

	s.customerID = uuid.New()
	s.token = jwtHelper.Token(s.T(), s.customerID, account.RoleCustomer)

	s.router.POST("/reviews", am.RequireAuth(), h.Create)
	s.router.GET("/reviews/:id", h.Get)
	s.router.PATCH("/reviews/:id", am.RequireAuth(), h.Update)
	s.router.DELETE("/reviews/:id", am.RequireAuth(), h.Delete)
	s.router.GET("/stylists/:id/reviews", h.ListByStylist)
	s.router.GET("/stylists/:id/rating", h.StylistRating)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

type testCaseReview struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/reviews"
	reqBody := builder.NewReviewBuilder().BuildCreateRequestDTO()
	createdID := uuid.New()

	bound := []testCaseReview{
		{name: "rating boundary OK (1)", mutate: testutil.Field("rating", 1), expectCode: http.StatusCreated},
		{name: "rating boundary OK (5)", mutate: testutil.Field("rating", 5), expectCode: http.StatusCreated},
		{name: "rating boundary invalid (0)", mutate: testutil.Field("rating", 0), expectCode: http.StatusBadRequest},
		{name: "rating boundary invalid (6)", mutate: testutil.Field("rating", 6), expectCode: http.StatusBadRequest},
		{name: "comment length OK (1000 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1000)), expectCode: http.StatusCreated},
		{name: "comment length invalid (1001 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
	}
	missing := []testCaseReview{
		{name: "missing field: appointment_id", mutate: testutil.Field("appointment_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: rating", mutate: testutil.Field("rating", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: comment", mutate: testutil.Field("comment", nil), expectCode: http.StatusBadRequest},
		{name: "empty comment", mutate: testutil.Field("comment", ""), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 with Location", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), commands.CreateReviewInput{
				AppointmentID: reqBody.AppointmentID,
				Rating:        reqBody.Rating,
				Comment:       reqBody.Comment,
			}).
			Return(createdID, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.token)

		var body resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(createdID.String(), body.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/reviews/" + createdID.String()})
	})

	for _, group := range [][]testCaseReview{bound, missing} {
		for _, tc := range group {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(createdID, nil)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), s.token)
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	}

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: domain errors keep their status", func() {
		cases := []struct {
			err  error
			code int
		}{
			{domreview.ErrAppointmentNotEligible, http.StatusBadRequest},
			{domreview.ErrNotAppointmentOwner, http.StatusForbidden},
			{commands.ErrAppointmentNotFound, http.StatusNotFound},
			{domreview.ErrReviewAlreadyExists, http.StatusConflict},
			{errors.New("connection reset"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.err)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.token)
			httptest.AssertErrorResponse(s.T(), rec, tc.code, "")
		}
	})
}

// ================================================================================
// TestGet / TestUpdate / TestDelete
// ================================================================================

func (s *ReviewHandlerTestSuite) TestGet() {
	view := builder.NewReviewBuilder().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), view.ID).Return(view, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/"+view.ID.String(), nil, "")

		var body queries.ReviewView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.Rating, body.Rating)
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, commands.ErrReviewNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *ReviewHandlerTestSuite) TestUpdate() {
	view := builder.NewReviewBuilder().With(func(b *builder.ReviewBuilder) { b.Rating = 4 }).BuildView()
	reqBody := builder.NewReviewBuilder().With(func(b *builder.ReviewBuilder) { b.Rating = 4 }).BuildUpdateRequestDTO()

	s.Run("success: returns the updated review", func() {
		gomock.InOrder(
			s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), view.ID, gomock.Any()).Return(nil),
			s.mockQueries.EXPECT().Get(gomock.Any(), view.ID).Return(view, nil),
		)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/reviews/"+view.ID.String(), reqBody, s.token)

		var body queries.ReviewView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(4, body.Rating)
	})

	s.Run("error: not the author", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(domreview.ErrNotReviewOwner)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/reviews/"+view.ID.String(), reqBody, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "author")
	})

	s.Run("error: rating out of range", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("rating", 9))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/reviews/"+view.ID.String(), body, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *ReviewHandlerTestSuite) TestDelete() {
	id := uuid.New()
	s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(nil)
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reviews/"+id.String(), nil, s.token)
	s.Equal(http.StatusNoContent, rec.Code)
}

// ================================================================================
// Stylist listings
// ================================================================================

func (s *ReviewHandlerTestSuite) TestListByStylist() {
	stylistID := uuid.New()
	views := []*queries.ReviewView{
		builder.NewReviewBuilder().With(func(b *builder.ReviewBuilder) { b.StylistID = stylistID }).BuildView(),
	}

	s.Run("success: passes cursor and limit", func() {
		s.mockQueries.EXPECT().
			ListByStylist(gomock.Any(), stylistID, &queries.Cursor{After: "abc"}, 10).
			Return(views, &queries.Cursor{After: "next"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stylists/"+stylistID.String()+"/reviews?limit=10&after=abc", nil, "")

		var body resdto.Page[queries.ReviewView]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
		s.Equal("next", body.NextCursor)
	})

	s.Run("error: limit above maximum", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stylists/"+stylistID.String()+"/reviews?limit=500", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *ReviewHandlerTestSuite) TestStylistRating() {
	stylistID := uuid.New()
	s.mockQueries.EXPECT().StylistRating(gomock.Any(), stylistID).
		Return(&queries.RatingSummary{StylistID: stylistID, Count: 2, Average: 4.5}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stylists/"+stylistID.String()+"/rating", nil, "")

	var body queries.RatingSummary
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(2, body.Count)
	s.InDelta(4.5, body.Average, 0.001)
}
