package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/pageza/homechef/backend/internal/models"
	"github.com/pageza/homechef/backend/internal/testhelpers"
	"github.com/pageza/homechef/backend/internal/types"
)

func setupAuthRouter(validator TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	chef := router.Group("/chef", AuthMiddleware(validator), RequireRole(models.RoleChef))
	chef.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"account_id": AccountID(c)})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	validator := &testhelpers.MockTokenValidator{}
	validator.On("ValidateToken", "chef-token").Return(&types.TokenClaims{AccountID: 3, Role: models.RoleChef}, nil)
	validator.On("ValidateToken", "client-token").Return(&types.TokenClaims{AccountID: 11, Role: models.RoleClient}, nil)
	validator.On("ValidateToken", "bad-token").Return(nil, errors.New("invalid token"))
	router := setupAuthRouter(validator)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic chef-token", http.StatusUnauthorized},
		{"invalid token", "Bearer bad-token", http.StatusUnauthorized},
		{"wrong role", "Bearer client-token", http.StatusForbidden},
		{"chef", "Bearer chef-token", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/chef/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(rr, req)
			assert.Equal(t, tt.status, rr.Code)
		})
	}

	rr := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/chef/me", nil)
	req.Header.Set("Authorization", "Bearer chef-token")
	router.ServeHTTP(rr, req)
	assert.JSONEq(t, `{"account_id":3}`, rr.Body.String())
}
