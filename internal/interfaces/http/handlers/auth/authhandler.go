// Package auth exposes the staff login endpoint.
package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authapp "fixmylab/internal/application/auth"
	"fixmylab/internal/shared/logger"
	"fixmylab/internal/shared/utils"
)

type AuthHandler struct {
	authService *authapp.Service
	logger      logger.Interface
}

func NewAuthHandler(authService *authapp.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger.NewLogger(),
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}
