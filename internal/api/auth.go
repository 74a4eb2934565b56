package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/homechef/backend/internal/service"
	"github.com/pageza/homechef/backend/internal/types"
)

// AuthHandler handles login
type AuthHandler struct {
	auth service.IAuthService
	log  logrus.FieldLogger
}

func NewAuthHandler(auth service.IAuthService, log logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", h.Login)
	}
}

// Login checks credentials and returns the account with a session token
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.LoginResponse{Success: false, Error: "email and password are required"})
		return
	}

	account, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, types.LoginResponse{Success: false, Error: "Invalid email or password"})
			return
		}
		respondError(c, h.log, err)
		return
	}

	h.log.WithFields(logrus.Fields{"account_id": account.ID, "role": account.Role}).Info("login")
	c.JSON(http.StatusOK, types.LoginResponse{
		Success: true,
		User:    account,
		Token:   token,
		Message: "Login successful",
	})
}
