package api

import (
	"net/http"

	reqdto "flashsale-scheduler/internal/handler/dto/request"
	resdto "flashsale-scheduler/internal/handler/dto/response"
	"flashsale-scheduler/internal/handler/httperr"
	"flashsale-scheduler/internal/handler/middleware"
	"flashsale-scheduler/internal/pkg/config"
	"flashsale-scheduler/internal/pkg/cookie"
	"flashsale-scheduler/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	cmds commands.AccountCommands
	cfg  config.Config
}

func NewAuthHandler(cmds commands.AccountCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{cmds: cmds, cfg: cfg}
}

// @Summary Demo login
// @Description Sign in with the demo credentials
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	session, err := h.cmds.LocalLogin(c.Request.Context(), req)
	if err != nil {
		abortWithUseCaseError(c, err, "Login failed")
		return
	}

	cookie.SetAccessToken(c, h.cfg.Cookie, session.AccessToken, h.cfg.JWT.Duration)
	c.JSON(http.StatusOK, resdto.FromSession(session))
}

// @Summary Marketplace authorization URL
// @Description Returns the OAuth consent URL of the marketplace
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.AuthURLResponse
// @Router /auth/marketplace/url [get]
func (h *AuthHandler) MarketplaceURL(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.AuthURLResponse{URL: h.cmds.MarketplaceAuthURL(uuid.NewString())})
}

// @Summary Marketplace callback
// @Description Exchanges the authorization code and imports the seller catalog
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.MarketplaceCallbackRequest true "Authorization code"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /auth/marketplace/callback [post]
func (h *AuthHandler) MarketplaceCallback(c *gin.Context) {
	var req reqdto.MarketplaceCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	session, err := h.cmds.ConnectMarketplace(c.Request.Context(), req.Code)
	if err != nil {
		abortWithUseCaseError(c, err, "Marketplace connection failed")
		return
	}

	cookie.SetAccessToken(c, h.cfg.Cookie, session.AccessToken, h.cfg.JWT.Duration)
	c.JSON(http.StatusOK, resdto.FromSession(session))
}

// @Summary Logout
// @Description Ends the session and restores the demo catalog
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.cmds.Logout(c.Request.Context()); err != nil {
		abortWithUseCaseError(c, err, "Logout failed")
		return
	}
	cookie.ClearAccessToken(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	name, ok := middleware.GetUserName(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "User not authenticated", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.UserResponse{Name: name, Marketplace: middleware.IsMarketplaceSession(c)})
}
