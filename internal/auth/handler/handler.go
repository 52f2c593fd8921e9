package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"authd/internal/auth"
	"authd/internal/middleware"
	"authd/internal/session"
	"authd/internal/user"
)

type Handler struct {
	strategy auth.Strategy
	users    user.Store
	reset    *auth.ResetTokenManager
	cookie   session.CookieOptions
	log      zerolog.Logger
}

func NewHandler(
	strategy auth.Strategy,
	users user.Store,
	reset *auth.ResetTokenManager,
	cookie session.CookieOptions,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		strategy: strategy,
		users:    users,
		reset:    reset,
		cookie:   cookie,
		log:      log,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.GET("/status", h.Status)
	api.POST("/users", h.Register)
	api.POST("/auth_session/login", h.Login)
	api.DELETE("/auth_session/logout", h.Logout)
	api.GET("/users/me", h.Me)
	api.POST("/reset_password", h.IssueResetToken)
	api.PUT("/reset_password", h.UpdatePassword)
}

func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// Me returns the profile of the user resolved by the auth middleware.
func (h *Handler) Me(c *gin.Context) {
	u, ok := middleware.CurrentUserFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": u.Email})
}
