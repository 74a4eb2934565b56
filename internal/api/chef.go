package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/homechef/backend/internal/middleware"
	"github.com/pageza/homechef/backend/internal/service"
	"github.com/pageza/homechef/backend/internal/types"
)

// ChefHandler serves a chef's own catalog, orders and earnings
type ChefHandler struct {
	recipes   service.IRecipeService
	orders    service.IOrderService
	dashboard service.IDashboardService
	limiter   *middleware.RateLimiter
	log       logrus.FieldLogger
}

// NewChefHandler creates a ChefHandler. limiter may be nil to disable rate limiting.
func NewChefHandler(recipes service.IRecipeService, orders service.IOrderService, dashboard service.IDashboardService, limiter *middleware.RateLimiter, log logrus.FieldLogger) *ChefHandler {
	return &ChefHandler{
		recipes:   recipes,
		orders:    orders,
		dashboard: dashboard,
		limiter:   limiter,
		log:       log,
	}
}

// RegisterRoutes expects router to already enforce the chef role
func (h *ChefHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		if h.limiter != nil {
			recipes.POST("", h.limiter.RateLimitMiddleware(), h.CreateRecipe)
		} else {
			recipes.POST("", h.CreateRecipe)
		}
		recipes.DELETE("/:id", h.DeleteRecipe)
	}
	router.GET("/orders", h.Orders)
	router.GET("/earnings", h.Earnings)
	router.GET("/dashboard", h.Dashboard)
}

func (h *ChefHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.ListRecipesByChef(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *ChefHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.CreateRecipe(c.Request.Context(), middleware.AccountID(c), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

func (h *ChefHandler) DeleteRecipe(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.recipes.DeleteChefRecipe(c.Request.Context(), middleware.AccountID(c), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ChefHandler) Orders(c *gin.Context) {
	orders, err := h.orders.ListOrdersByChef(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *ChefHandler) Earnings(c *gin.Context) {
	earnings, err := h.dashboard.ChefEarnings(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, earnings)
}

func (h *ChefHandler) Dashboard(c *gin.Context) {
	dash, err := h.dashboard.Chef(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}
