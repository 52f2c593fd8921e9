package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"authd/internal/auth/credentials"
	"authd/internal/user"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
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

	hashed, err := credentials.Hash(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	u, err := h.users.Add(c.Request.Context(), req.Email, hashed)
	if errors.Is(err, user.ErrDuplicateEmail) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email already registered"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	h.log.Info().
		Str("event", "user_registered").
		Str("email", u.Email).
		Msg("user created")

	c.JSON(http.StatusOK, gin.H{"email": u.Email, "message": "user created"})
}
