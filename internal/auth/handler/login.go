package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"authd/internal/auth/credentials"
	"authd/internal/logger"
	"authd/internal/session"
	"authd/internal/user"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email missing"})
		return
	}
	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password missing"})
		return
	}

	u, err := h.users.FindOneBy(c.Request.Context(), map[string]string{
		user.FieldEmail: req.Email,
	})
	if errors.Is(err, user.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no user found for this email"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	if !credentials.Verify(u.HashedPassword, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong password"})
		return
	}

	sessionID, err := h.strategy.CreateSession(c.Request.Context(), u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
		return
	}

	session.SetCookie(c.Writer, sessionID, h.cookie)

	h.log.Info().
		Str("event", "login").
		Msg(logger.Redact("email=" + u.Email + ";session_id=" + sessionID))

	c.JSON(http.StatusOK, gin.H{"email": u.Email})
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.strategy.DestroySession(c.Request); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	session.ClearCookie(c.Writer, h.cookie)
	c.JSON(http.StatusOK, gin.H{})
}
