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

type AuthHandler struct {
	cmds     commands.AuthCommands
	accounts queries.AccountQueries
}

func NewAuthHandler(cmds commands.AuthCommands, accounts queries.AccountQueries) *AuthHandler {
	return &AuthHandler{cmds: cmds, accounts: accounts}
}

// @Summary Login
// @Description Login with a username or email and a password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Current account
// @Description Get the authenticated caller's account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AccountResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	view, err := h.accounts.Me(c.Request.Context(), principal(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccountView(view, true))
}
