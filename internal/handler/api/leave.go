package api

import (
	"net/http"

	reqdto "salon-backend/internal/handler/dto/request"
	resdto "salon-backend/internal/handler/dto/response"
	"salon-backend/internal/handler/httperr"
	"salon-backend/internal/pkg/clock"
	"salon-backend/internal/usecase/commands"
	"salon-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LeaveHandler struct {
	cmds  commands.LeaveCommands
	q     queries.LeaveQueries
	clock clock.Clock
}

func NewLeaveHandler(cmds commands.LeaveCommands, q queries.LeaveQueries, clk clock.Clock) *LeaveHandler {
	return &LeaveHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary Apply for leave
// @Description Stylists only. Both dates fall in the same calendar year and the balance must cover the days.
// @Tags leave
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ApplyLeaveRequest true "Leave request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /leave-requests [post]
func (h *LeaveHandler) Apply(c *gin.Context) {
	var req reqdto.ApplyLeaveRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	id, err := h.cmds.Apply(c.Request.Context(), principal(c), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Header("Location", "/api/leave-requests/"+id.String())
	c.JSON(http.StatusCreated, resdto.Created(id))
}

// @Summary List leave requests
// @Description Stylists only see their own.
// @Tags leave
// @Produce json
// @Security BearerAuth
// @Param stylist_id query string false "Stylist filter"
// @Param status query string false "pending, approved, rejected or withdrawn"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[queries.LeaveRequestView]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /leave-requests [get]
func (h *LeaveHandler) List(c *gin.Context) {
	var q reqdto.ListLeaveQuery
	if !bindQuery(c, &q) {
		return
	}
	f := queries.LeaveFilter{StylistID: reqdto.OptionalUUID(q.StylistID), Status: q.Status}
	items, next, err := h.q.List(c.Request.Context(), principal(c), f, q.Cursor(), q.Limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(items, next))
}

// @Summary Get leave request
// @Tags leave
// @Produce json
// @Security BearerAuth
// @Param id path string true "Leave request ID"
// @Success 200 {object} queries.LeaveRequestView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /leave-requests/{id} [get]
func (h *LeaveHandler) Get(c *gin.Context) {
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

// @Summary Approve leave request
// @Description Deducts the balance exactly once. Approving a decided request is a conflict.
// @Tags leave
// @Security BearerAuth
// @Param id path string true "Leave request ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /leave-requests/{id}/approve [patch]
func (h *LeaveHandler) Approve(c *gin.Context) { h.decide(c, h.cmds.Approve) }

// @Summary Reject leave request
// @Tags leave
// @Security BearerAuth
// @Param id path string true "Leave request ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /leave-requests/{id}/reject [patch]
func (h *LeaveHandler) Reject(c *gin.Context) { h.decide(c, h.cmds.Reject) }

// @Summary Withdraw leave request
// @Tags leave
// @Security BearerAuth
// @Param id path string true "Leave request ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /leave-requests/{id}/withdraw [patch]
func (h *LeaveHandler) Withdraw(c *gin.Context) { h.decide(c, h.cmds.Withdraw) }

// @Summary Delete leave request
// @Description Admin only. Approved requests are kept.
// @Tags leave
// @Security BearerAuth
// @Param id path string true "Leave request ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /leave-requests/{id} [delete]
func (h *LeaveHandler) Delete(c *gin.Context) { h.decide(c, h.cmds.Delete) }

func (h *LeaveHandler) decide(c *gin.Context, fn idCommand) {
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

// @Summary Leave balance
// @Description A stylist's balance for a year, created from the default allotment on first access.
// @Tags stylists
// @Produce json
// @Security BearerAuth
// @Param id path string true "Stylist ID"
// @Param year query int false "Year (default current)"
// @Success 200 {object} resdto.LeaveBalanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /stylists/{id}/leave-balance [get]
func (h *LeaveHandler) Balance(c *gin.Context) {
	stylistID, ok := pathID(c, "id")
	if !ok {
		return
	}
	year, ok := queryYear(c, h.clock.Now().Year())
	if !ok {
		return
	}
	res, err := h.cmds.Balance(c.Request.Context(), principal(c), stylistID, year)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLeaveBalance(res))
}
