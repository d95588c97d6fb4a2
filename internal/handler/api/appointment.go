package api

import (
	"net/http"

	"salon-backend/internal/domain/schedule"
	reqdto "salon-backend/internal/handler/dto/request"
	resdto "salon-backend/internal/handler/dto/response"
	"salon-backend/internal/handler/httperr"
	"salon-backend/internal/usecase/commands"
	"salon-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	cmds         commands.AppointmentCommands
	q            queries.AppointmentQueries
	availability queries.AvailabilityQueries
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, q queries.AppointmentQueries, availability queries.AvailabilityQueries) *AppointmentHandler {
	return &AppointmentHandler{cmds: cmds, q: q, availability: availability}
}

// @Summary Book an appointment
// @Description Customers book for themselves; staff pass customer_id. The start must be an available slot.
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookAppointmentRequest true "Booking"
// @Success 201 {object} queries.AppointmentView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req reqdto.BookAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}
	p := principal(c)
	id, err := h.cmds.Book(c.Request.Context(), p, req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), p, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Header("Location", "/api/appointments/"+id.String())
	c.JSON(http.StatusCreated, view)
}

// @Summary List appointments
// @Description Customers only see their own and stylists only theirs.
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param customer_id query string false "Customer filter"
// @Param stylist_id query string false "Stylist filter"
// @Param branch_id query string false "Branch filter"
// @Param status query string false "pending, confirmed, completed or cancelled"
// @Param from query string false "RFC 3339 lower bound on start"
// @Param to query string false "RFC 3339 upper bound on start"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[queries.AppointmentView]
// @Failure 400 {object} httperr.Response
// @Router /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	var q reqdto.ListAppointmentsQuery
	if !bindQuery(c, &q) {
		return
	}
	h.list(c, q, queries.AppointmentFilter{
		CustomerID: reqdto.OptionalUUID(q.CustomerID),
		StylistID:  reqdto.OptionalUUID(q.StylistID),
	})
}

// @Summary List a customer's appointments
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} resdto.Page[queries.AppointmentView]
// @Failure 403 {object} httperr.Response
// @Router /customers/{id}/appointments [get]
func (h *AppointmentHandler) ListForCustomer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.ListAppointmentsQuery
	if !bindQuery(c, &q) {
		return
	}
	h.list(c, q, queries.AppointmentFilter{CustomerID: &id})
}

// @Summary List a stylist's appointments
// @Tags stylists
// @Produce json
// @Security BearerAuth
// @Param id path string true "Stylist ID"
// @Success 200 {object} resdto.Page[queries.AppointmentView]
// @Failure 403 {object} httperr.Response
// @Router /stylists/{id}/appointments [get]
func (h *AppointmentHandler) ListForStylist(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.ListAppointmentsQuery
	if !bindQuery(c, &q) {
		return
	}
	h.list(c, q, queries.AppointmentFilter{StylistID: &id})
}

func (h *AppointmentHandler) list(c *gin.Context, q reqdto.ListAppointmentsQuery, f queries.AppointmentFilter) {
	f.BranchID = reqdto.OptionalUUID(q.BranchID)
	f.Status = q.Status
	f.From = reqdto.OptionalTime(q.From)
	f.To = reqdto.OptionalTime(q.To)

	items, next, err := h.q.List(c.Request.Context(), principal(c), f, q.Cursor(), q.Limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(items, next))
}

// @Summary Get appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} queries.AppointmentView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), principal(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Confirm appointment
// @Tags appointments
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments/{id}/confirm [patch]
func (h *AppointmentHandler) Confirm(c *gin.Context) { h.transition(c, h.cmds.Confirm) }

// @Summary Complete appointment
// @Description Awards loyalty points to the customer.
// @Tags appointments
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments/{id}/complete [patch]
func (h *AppointmentHandler) Complete(c *gin.Context) { h.transition(c, h.cmds.Complete) }

// @Summary Cancel appointment
// @Description Refunds the points used at booking.
// @Tags appointments
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments/{id}/cancel [patch]
func (h *AppointmentHandler) Cancel(c *gin.Context) { h.transition(c, h.cmds.Cancel) }

// @Summary Delete appointment
// @Description Admin only. Completed appointments are kept.
// @Tags appointments
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) { h.transition(c, h.cmds.Delete) }

func (h *AppointmentHandler) transition(c *gin.Context, fn idCommand) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := fn(c.Request.Context(), principal(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Available slots
// @Description Bookable start times of a stylist on a date. Unknown or missing ids give an empty list.
// @Tags stylists
// @Produce json
// @Param id path string true "Stylist ID"
// @Param branchId query string true "Branch ID"
// @Param serviceId query string true "Service ID"
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {object} resdto.List[queries.SlotView]
// @Failure 400 {object} httperr.Response
// @Router /stylists/{id}/available-slots [get]
func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	date, err := schedule.ParseDate(c.Query("date"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	slots, err := h.availability.AvailableSlots(c.Request.Context(),
		lenientID(c.Param("id")), lenientID(c.Query("branchId")), lenientID(c.Query("serviceId")), date)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewList(slots))
}

// lenientID maps a missing or malformed id to uuid.Nil, which reads as "unknown".
func lenientID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}
