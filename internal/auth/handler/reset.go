package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type issueResetRequest struct {
	Email string `json:"email"`
}

func (h *Handler) IssueResetToken(c *gin.Context) {
	var req issueResetRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email missing"})
		return
	}

	token, err := h.reset.Issue(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"email": req.Email, "reset_token": token})
}

type updatePasswordRequest struct {
	Email       string `json:"email"`
	ResetToken  string `json:"reset_token"`
	NewPassword string `json:"new_password"`
}

func (h *Handler) UpdatePassword(c *gin.Context) {
	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.reset.Consume(c.Request.Context(), req.ResetToken, req.NewPassword); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"email": req.Email, "message": "Password updated"})
}
