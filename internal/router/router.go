package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/homechef/backend/internal/api"
	"github.com/pageza/homechef/backend/internal/middleware"
)

// SetupRouter configures the middleware chain and application routes
func SetupRouter(
	svc api.Services,
	limits api.RateLimiters,
	checks map[string]api.HealthChecker,
	corsOrigins []string,
	log logrus.FieldLogger,
) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(corsOrigins))

	api.RegisterRoutes(router, svc, limits, checks, log)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return router
}
