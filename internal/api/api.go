package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/homechef/backend/internal/middleware"
	"github.com/pageza/homechef/backend/internal/models"
	"github.com/pageza/homechef/backend/internal/service"
)

// Services bundles what the HTTP surface calls into
type Services struct {
	Auth      service.IAuthService
	Accounts  service.IAccountService
	Recipes   service.IRecipeService
	Orders    service.IOrderService
	Dashboard service.IDashboardService
	Favorites service.IFavoriteService
	Reports   service.IReportService
}

// RateLimiters guards the write endpoints. A nil limiter disables its guard.
type RateLimiters struct {
	RecipeCreation *middleware.RateLimiter
	OrderCreation  *middleware.RateLimiter
}

// RegisterRoutes registers all API routes under /api/v1
func RegisterRoutes(router *gin.Engine, svc Services, limits RateLimiters, checks map[string]HealthChecker, log logrus.FieldLogger) {
	health := NewHealthHandler(checks)
	router.GET("/health", health.Health)

	v1 := router.Group("/api/v1")
	health.RegisterRoutes(v1)
	NewAuthHandler(svc.Auth, log).RegisterRoutes(v1)

	authed := v1.Group("", middleware.AuthMiddleware(svc.Auth))

	admin := authed.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	NewAdminHandler(svc.Accounts, svc.Recipes, svc.Orders, svc.Dashboard, svc.Reports, log).RegisterRoutes(admin)

	chef := authed.Group("/chef", middleware.RequireRole(models.RoleChef))
	NewChefHandler(svc.Recipes, svc.Orders, svc.Dashboard, limits.RecipeCreation, log).RegisterRoutes(chef)

	client := authed.Group("/client", middleware.RequireRole(models.RoleClient))
	NewClientHandler(svc.Recipes, svc.Orders, svc.Favorites, svc.Dashboard, limits.OrderCreation, log).RegisterRoutes(client)
}
