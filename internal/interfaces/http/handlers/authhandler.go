package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corpsbank/internal/infrastructure/auth"
	"corpsbank/internal/shared/config"
	"corpsbank/internal/shared/logger"
	"corpsbank/internal/shared/utils"
)

// AuthHandler logs the single administrator in and out.
type AuthHandler struct {
	adminCfg config.AdminConfig
	sessions *auth.SessionService
	hasher   *auth.BcryptPasswordHasher
	cookie   config.SessionConfig
	logger   logger.Interface
}

func NewAuthHandler(
	adminCfg config.AdminConfig,
	sessionCfg config.SessionConfig,
	sessions *auth.SessionService,
	hasher *auth.BcryptPasswordHasher,
	log logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		adminCfg: adminCfg,
		sessions: sessions,
		hasher:   hasher,
		cookie:   sessionCfg,
		logger:   log,
	}
}

type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "username and password are required")
		return
	}

	if req.Username != h.adminCfg.Username ||
		h.hasher.Verify(req.Password, h.adminCfg.PasswordHash) != nil {
		h.logger.Warnw("failed login attempt", "username", req.Username, "client_ip", c.ClientIP())
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials!")
		return
	}

	token, err := h.sessions.Generate(req.Username)
	if err != nil {
		h.logger.Errorw("failed to generate session token", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.CookieName, token, h.sessions.ExpSeconds(), "/", "", h.cookie.Secure, true)

	h.logger.Infow("admin logged in", "username", req.Username)
	utils.SuccessResponse(c, http.StatusOK, "Logged in successfully.", nil)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.CookieName, "", -1, "/", "", h.cookie.Secure, true)

	h.logger.Infow("admin logged out")
	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully.", nil)
}
