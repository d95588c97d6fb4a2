//go:build e2e

package api_test

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	reqdto "salon-backend/internal/handler/dto/request"
	resdto "salon-backend/internal/handler/dto/response"
	"salon-backend/internal/testutil/dbtest"
	"salon-backend/internal/testutil/e2etest"
	"salon-backend/internal/testutil/httptest"
	"salon-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BookingSuite struct {
	e2etest.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type bookingWorld struct {
	branchID  uuid.UUID
	stylistID uuid.UUID
	serviceID uuid.UUID
	alice     uuid.UUID
	bob       uuid.UUID
	start     time.Time
}

func (s *BookingSuite) seed() bookingWorld {
	t := s.T()
	branchID := dbtest.CreateBranch(t, s.DB, "Orchard")
	w := bookingWorld{
		branchID:  branchID,
		stylistID: dbtest.CreateAccount(t, s.DB, "stylist", "stella", &branchID),
		serviceID: dbtest.CreateService(t, s.DB, "Cut", 60, 4500),
		alice:     dbtest.CreateAccount(t, s.DB, "customer", "alice", nil),
		bob:       dbtest.CreateAccount(t, s.DB, "customer", "bob", nil),
	}
	dbtest.CreateAccount(t, s.DB, "admin", "root", nil)

	loc, err := time.LoadLocation("Asia/Singapore")
	require.NoError(t, err)
	d := time.Now().In(loc).AddDate(0, 0, 7)
	w.start = time.Date(d.Year(), d.Month(), d.Day(), 10, 0, 0, 0, loc)
	return w
}

func (s *BookingSuite) book(w bookingWorld, token string) *nethttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/appointments", reqdto.BookAppointmentRequest{
		StylistID: w.stylistID,
		ServiceID: w.serviceID,
		BranchID:  w.branchID,
		Start:     w.start,
	}, token)
}

func (s *BookingSuite) TestBookAndTransition() {
	s.Run("customer books a free slot and the slot disappears", func() {
		t := s.T()
		w := s.seed()
		alice := e2etest.Login(t, s.Router, "alice")

		slotsURL := fmt.Sprintf("/api/stylists/%s/available-slots?branchId=%s&serviceId=%s&date=%s",
			w.stylistID, w.branchID, w.serviceID, w.start.Format(time.DateOnly))
		before := httptest.PerformRequest(t, s.Router, http.MethodGet, slotsURL, nil, "")
		require.Equal(t, http.StatusOK, before.Code, before.Body.String())
		var slots resdto.List[queries.SlotView]
		httptest.DecodeBody(t, before, &slots)
		require.True(t, hasSlot(slots.Items, w.start), "10:00 should be offered")

		res := s.book(w, alice)
		require.Equal(t, http.StatusCreated, res.Code, res.Body.String())
		var view queries.AppointmentView
		httptest.DecodeBody(t, res, &view)
		require.Equal(t, "pending", view.Status)
		require.Equal(t, int64(4500), view.PriceCents)
		require.True(t, view.StartAt.Equal(w.start))
		require.Equal(t, "/api/appointments/"+view.ID.String(), res.Header().Get("Location"))

		after := httptest.PerformRequest(t, s.Router, http.MethodGet, slotsURL, nil, "")
		require.Equal(t, http.StatusOK, after.Code)
		httptest.DecodeBody(t, after, &slots)
		require.False(t, hasSlot(slots.Items, w.start), "booked slot must no longer be offered")
	})

	s.Run("second booking of the same slot conflicts", func() {
		t := s.T()
		w := s.seed()

		first := s.book(w, e2etest.Login(t, s.Router, "alice"))
		require.Equal(t, http.StatusCreated, first.Code, first.Body.String())

		second := s.book(w, e2etest.Login(t, s.Router, "bob"))
		httptest.AssertErrorResponse(t, second, http.StatusConflict, "requested time is not available")
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "appointments", ""))
	})

	s.Run("staff confirm then complete awards loyalty points", func() {
		t := s.T()
		w := s.seed()
		res := s.book(w, e2etest.Login(t, s.Router, "alice"))
		require.Equal(t, http.StatusCreated, res.Code, res.Body.String())
		var view queries.AppointmentView
		httptest.DecodeBody(t, res, &view)

		admin := e2etest.Login(t, s.Router, "root")
		confirm := httptest.PerformRequest(t, s.Router, http.MethodPatch, "/api/appointments/"+view.ID.String()+"/confirm", nil, admin)
		require.Equal(t, http.StatusNoContent, confirm.Code, confirm.Body.String())
		complete := httptest.PerformRequest(t, s.Router, http.MethodPatch, "/api/appointments/"+view.ID.String()+"/complete", nil, admin)
		require.Equal(t, http.StatusNoContent, complete.Code, complete.Body.String())

		// completed appointments are final
		cancel := httptest.PerformRequest(t, s.Router, http.MethodPatch, "/api/appointments/"+view.ID.String()+"/cancel", nil, admin)
		require.Equal(t, http.StatusConflict, cancel.Code, cancel.Body.String())

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "accounts", "id = $1 AND loyalty_points > 0", w.alice))
	})

	s.Run("customer cannot confirm their own appointment", func() {
		t := s.T()
		w := s.seed()
		alice := e2etest.Login(t, s.Router, "alice")
		res := s.book(w, alice)
		require.Equal(t, http.StatusCreated, res.Code, res.Body.String())
		var view queries.AppointmentView
		httptest.DecodeBody(t, res, &view)

		confirm := httptest.PerformRequest(t, s.Router, http.MethodPatch, "/api/appointments/"+view.ID.String()+"/confirm", nil, alice)
		require.Equal(t, http.StatusForbidden, confirm.Code, confirm.Body.String())
	})
}

func hasSlot(slots []queries.SlotView, start time.Time) bool {
	for _, s := range slots {
		if s.Start.Equal(start) {
			return true
		}
	}
	return false
}
