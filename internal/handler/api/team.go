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

type TeamHandler struct {
	cmds commands.TeamCommands
	q    queries.TeamQueries
}

func NewTeamHandler(cmds commands.TeamCommands, q queries.TeamQueries) *TeamHandler {
	return &TeamHandler{cmds: cmds, q: q}
}

// @Summary Create team
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTeamRequest true "Team"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /teams [post]
func (h *TeamHandler) Create(c *gin.Context) {
	var req reqdto.CreateTeamRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), principal(c), req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Header("Location", "/api/teams/"+id.String())
	c.JSON(http.StatusCreated, resdto.Created(id))
}

// @Summary List teams
// @Tags teams
// @Produce json
// @Param branch_id query string false "Branch filter"
// @Success 200 {object} resdto.List[queries.TeamView]
// @Failure 400 {object} httperr.Response
// @Router /teams [get]
func (h *TeamHandler) List(c *gin.Context) {
	var q struct {
		BranchID *string `form:"branch_id" binding:"omitempty,uuid"`
	}
	if !bindQuery(c, &q) {
		return
	}
	items, err := h.q.List(c.Request.Context(), reqdto.OptionalUUID(q.BranchID))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewList(items))
}

// @Summary Get team
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} queries.TeamView
// @Failure 404 {object} httperr.Response
// @Router /teams/{id} [get]
func (h *TeamHandler) Get(c *gin.Context) {
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

// @Summary List team members
// @Description Stylists assigned to the team. Contact details are not exposed.
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.AccountResponse]
// @Failure 404 {object} httperr.Response
// @Router /teams/{id}/members [get]
func (h *TeamHandler) Members(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var page reqdto.PageQuery
	if !bindQuery(c, &page) {
		return
	}
	items, next, err := h.q.Members(c.Request.Context(), id, page.Cursor(), page.Limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(resdto.FromAccountViews(items, nil), next))
}

// @Summary Update team
// @Tags teams
// @Accept json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Param request body reqdto.UpdateTeamRequest true "Team"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /teams/{id} [patch]
func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateTeamRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Update(c.Request.Context(), principal(c), id, req.ToInput()); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete team
// @Tags teams
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /teams/{id} [delete]
func (h *TeamHandler) Delete(c *gin.Context) {
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
