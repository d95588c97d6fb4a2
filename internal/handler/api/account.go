package api

import (
	"net/http"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/auth"
	reqdto "salon-backend/internal/handler/dto/request"
	resdto "salon-backend/internal/handler/dto/response"
	"salon-backend/internal/handler/httperr"
	"salon-backend/internal/usecase/commands"
	"salon-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// AccountHandler serves /customers, /stylists and /admins. Each group only
// reaches accounts of its own roles.
type AccountHandler struct {
	cmds commands.AccountCommands
	q    queries.AccountQueries
}

func NewAccountHandler(cmds commands.AccountCommands, q queries.AccountQueries) *AccountHandler {
	return &AccountHandler{cmds: cmds, q: q}
}

var groupRoles = map[queries.AccountGroup][]account.Role{
	queries.GroupCustomers: {account.RoleCustomer},
	queries.GroupStylists:  {account.RoleStylist},
	queries.GroupAdmins:    {account.RoleManager, account.RoleAdmin},
}

// @Summary Sign up as a customer
// @Description Public signup. Staff may call it authenticated to register a walk-in customer.
// @Tags customers
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAccountRequest true "Customer"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /customers [post]
func (h *AccountHandler) CreateCustomer(c *gin.Context) {
	var req reqdto.CreateAccountRequest
	if !bindJSON(c, &req) {
		return
	}
	h.create(c, req.ToInput(account.RoleCustomer), "/api/customers/")
}

// @Summary Create stylist
// @Tags stylists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAccountRequest true "Stylist"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /stylists [post]
func (h *AccountHandler) CreateStylist(c *gin.Context) {
	var req reqdto.CreateAccountRequest
	if !bindJSON(c, &req) {
		return
	}
	h.create(c, req.ToInput(account.RoleStylist), "/api/stylists/")
}

// @Summary Create admin or store manager
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAdminRequest true "Admin"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admins [post]
func (h *AccountHandler) CreateAdmin(c *gin.Context) {
	var req reqdto.CreateAdminRequest
	if !bindJSON(c, &req) {
		return
	}
	h.create(c, req.ToInput(account.Role(req.Role)), "/api/admins/")
}

func (h *AccountHandler) create(c *gin.Context, in commands.CreateAccountInput, location string) {
	id, err := h.cmds.Create(c.Request.Context(), principal(c), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Header("Location", location+id.String())
	c.JSON(http.StatusCreated, resdto.Created(id))
}

// @Summary List customers
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.AccountResponse]
// @Failure 403 {object} httperr.Response
// @Router /customers [get]
func (h *AccountHandler) ListCustomers(c *gin.Context) {
	h.list(c, queries.GroupCustomers, queries.AccountFilter{})
}

// @Summary List stylists
// @Tags stylists
// @Produce json
// @Param branch_id query string false "Branch filter"
// @Param team_id query string false "Team filter"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.AccountResponse]
// @Router /stylists [get]
func (h *AccountHandler) ListStylists(c *gin.Context) {
	var q struct {
		BranchID *string `form:"branch_id" binding:"omitempty,uuid"`
		TeamID   *string `form:"team_id" binding:"omitempty,uuid"`
	}
	if !bindQuery(c, &q) {
		return
	}
	h.list(c, queries.GroupStylists, queries.AccountFilter{
		BranchID: reqdto.OptionalUUID(q.BranchID),
		TeamID:   reqdto.OptionalUUID(q.TeamID),
	})
}

// @Summary List stylists of a branch
// @Tags branches
// @Produce json
// @Param id path string true "Branch ID"
// @Success 200 {object} resdto.Page[resdto.AccountResponse]
// @Router /branches/{id}/stylists [get]
func (h *AccountHandler) ListBranchStylists(c *gin.Context) {
	branchID, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.list(c, queries.GroupStylists, queries.AccountFilter{BranchID: &branchID})
}

// @Summary List admins and store managers
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Page[resdto.AccountResponse]
// @Failure 403 {object} httperr.Response
// @Router /admins [get]
func (h *AccountHandler) ListAdmins(c *gin.Context) {
	h.list(c, queries.GroupAdmins, queries.AccountFilter{})
}

func (h *AccountHandler) list(c *gin.Context, group queries.AccountGroup, f queries.AccountFilter) {
	var page reqdto.PageQuery
	if !bindQuery(c, &page) {
		return
	}
	p := principal(c)
	items, next, err := h.q.List(c.Request.Context(), p, group, f, page.Cursor(), page.Limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(resdto.FromAccountViews(items, isPrivateFor(p)), next))
}

// @Summary Get customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} resdto.AccountResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/{id} [get]
func (h *AccountHandler) GetCustomer(c *gin.Context) { h.get(c, queries.GroupCustomers) }

// @Summary Get stylist
// @Tags stylists
// @Produce json
// @Param id path string true "Stylist ID"
// @Success 200 {object} resdto.AccountResponse
// @Failure 404 {object} httperr.Response
// @Router /stylists/{id} [get]
func (h *AccountHandler) GetStylist(c *gin.Context) { h.get(c, queries.GroupStylists) }

// @Summary Get admin
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Success 200 {object} resdto.AccountResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admins/{id} [get]
func (h *AccountHandler) GetAdmin(c *gin.Context) { h.get(c, queries.GroupAdmins) }

func (h *AccountHandler) get(c *gin.Context, group queries.AccountGroup) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p := principal(c)
	view, err := h.q.Get(c.Request.Context(), p, group, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccountView(view, isPrivateFor(p)(view)))
}

// @Summary Update customer
// @Description Partial update; only fields present in the body change.
// @Tags customers
// @Accept json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body reqdto.UpdateAccountRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /customers/{id} [patch]
func (h *AccountHandler) UpdateCustomer(c *gin.Context) { h.update(c, queries.GroupCustomers) }

// @Summary Update stylist
// @Tags stylists
// @Accept json
// @Security BearerAuth
// @Param id path string true "Stylist ID"
// @Param request body reqdto.UpdateAccountRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /stylists/{id} [patch]
func (h *AccountHandler) UpdateStylist(c *gin.Context) { h.update(c, queries.GroupStylists) }

// @Summary Update admin
// @Tags admins
// @Accept json
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Param request body reqdto.UpdateAccountRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admins/{id} [patch]
func (h *AccountHandler) UpdateAdmin(c *gin.Context) { h.update(c, queries.GroupAdmins) }

func (h *AccountHandler) update(c *gin.Context, group queries.AccountGroup) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateAccountRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Update(c.Request.Context(), principal(c), id, groupRoles[group], req.ToInput()); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete customer
// @Tags customers
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/{id} [delete]
func (h *AccountHandler) DeleteCustomer(c *gin.Context) { h.delete(c, queries.GroupCustomers) }

// @Summary Delete stylist
// @Tags stylists
// @Security BearerAuth
// @Param id path string true "Stylist ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /stylists/{id} [delete]
func (h *AccountHandler) DeleteStylist(c *gin.Context) { h.delete(c, queries.GroupStylists) }

// @Summary Delete admin
// @Tags admins
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admins/{id} [delete]
func (h *AccountHandler) DeleteAdmin(c *gin.Context) { h.delete(c, queries.GroupAdmins) }

func (h *AccountHandler) delete(c *gin.Context, group queries.AccountGroup) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), principal(c), id, groupRoles[group]); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func isPrivateFor(p auth.Principal) func(*queries.AccountView) bool {
	return func(v *queries.AccountView) bool {
		return p.IsStaff() || v.ID == p.UserID
	}
}
