package api

import (
	"net/http"

	reqdto "salon-backend/internal/handler/dto/request"
	resdto "salon-backend/internal/handler/dto/response"
	"salon-backend/internal/handler/httperr"
	"salon-backend/internal/usecase/commands"
	"salon-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BranchHandler struct {
	cmds commands.BranchCommands
	q    queries.BranchQueries
}

func NewBranchHandler(cmds commands.BranchCommands, q queries.BranchQueries) *BranchHandler {
	return &BranchHandler{cmds: cmds, q: q}
}

// @Summary Create branch
// @Description Hours are "HH:MM". A missing window means the branch is closed on that day type.
// @Tags branches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBranchRequest true "Branch"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /branches [post]
func (h *BranchHandler) Create(c *gin.Context) {
	var req reqdto.CreateBranchRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), principal(c), req.ToParams())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Header("Location", "/api/branches/"+id.String())
	c.JSON(http.StatusCreated, resdto.Created(id))
}

// @Summary List branches
// @Tags branches
// @Produce json
// @Success 200 {object} resdto.List[queries.BranchView]
// @Router /branches [get]
func (h *BranchHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewList(items))
}

// @Summary Get branch
// @Tags branches
// @Produce json
// @Param id path string true "Branch ID"
// @Success 200 {object} queries.BranchView
// @Failure 404 {object} httperr.Response
// @Router /branches/{id} [get]
func (h *BranchHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update branch
// @Tags branches
// @Accept json
// @Security BearerAuth
// @Param id path string true "Branch ID"
// @Param request body reqdto.UpdateBranchRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /branches/{id} [patch]
func (h *BranchHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateBranchRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Update(c.Request.Context(), principal(c), id, req.ToParams()); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete branch
// @Tags branches
// @Security BearerAuth
// @Param id path string true "Branch ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /branches/{id} [delete]
func (h *BranchHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), principal(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create holiday
// @Description Without branch_id the holiday applies to every branch.
// @Tags holidays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHolidayRequest true "Holiday"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /holidays [post]
func (h *BranchHandler) CreateHoliday(c *gin.Context) {
	var req reqdto.CreateHolidayRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	id, err := h.cmds.CreateHoliday(c.Request.Context(), principal(c), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.Created(id))
}

// @Summary List holidays
// @Tags holidays
// @Produce json
// @Param branch_id query string false "Branch filter (global holidays are always included)"
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Success 200 {object} resdto.List[queries.HolidayView]
// @Failure 400 {object} httperr.Response
// @Router /holidays [get]
func (h *BranchHandler) ListHolidays(c *gin.Context) {
	var q reqdto.ListHolidaysQuery
	if !bindQuery(c, &q) {
		return
	}
	from, err := reqdto.OptionalDate(q.From)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	to, err := reqdto.OptionalDate(q.To)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	items, err := h.q.ListHolidays(c.Request.Context(), queries.HolidayFilter{
		BranchID: reqdto.OptionalUUID(q.BranchID),
		From:     from,
		To:       to,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewList(items))
}

// @Summary Delete holiday
// @Tags holidays
// @Security BearerAuth
// @Param id path string true "Holiday ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /holidays/{id} [delete]
func (h *BranchHandler) DeleteHoliday(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteHoliday(c.Request.Context(), principal(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
