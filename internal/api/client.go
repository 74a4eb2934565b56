package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/homechef/backend/internal/middleware"
	"github.com/pageza/homechef/backend/internal/service"
	"github.com/pageza/homechef/backend/internal/types"
)

// ClientHandler serves the catalog, a client's orders and favorites
type ClientHandler struct {
	recipes   service.IRecipeService
	orders    service.IOrderService
	favorites service.IFavoriteService
	dashboard service.IDashboardService
	limiter   *middleware.RateLimiter
	log       logrus.FieldLogger
}

// NewClientHandler creates a ClientHandler. limiter may be nil to disable rate limiting.
func NewClientHandler(recipes service.IRecipeService, orders service.IOrderService, favorites service.IFavoriteService, dashboard service.IDashboardService, limiter *middleware.RateLimiter, log logrus.FieldLogger) *ClientHandler {
	return &ClientHandler{
		recipes:   recipes,
		orders:    orders,
		favorites: favorites,
		dashboard: dashboard,
		limiter:   limiter,
		log:       log,
	}
}

// RegisterRoutes expects router to already enforce the client role
func (h *ClientHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recipes", h.ListRecipes)

	orders := router.Group("/orders")
	{
		orders.GET("", h.ListOrders)
		if h.limiter != nil {
			orders.POST("", h.limiter.RateLimitMiddleware(), h.CreateOrder)
		} else {
			orders.POST("", h.CreateOrder)
		}
		orders.POST("/:id/rating", h.RateOrder)
	}

	router.GET("/favorites", h.ListFavorites)
	router.POST("/favorites/:id", h.ToggleFavorite)
	router.GET("/dashboard", h.Dashboard)
}

func (h *ClientHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.ListRecipes(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *ClientHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.ListOrdersByClient(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *ClientHandler) CreateOrder(c *gin.Context) {
	var req types.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), middleware.AccountID(c), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

func (h *ClientHandler) RateOrder(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req types.RateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.RateClientOrder(c.Request.Context(), middleware.AccountID(c), id, req.Rating)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *ClientHandler) ListFavorites(c *gin.Context) {
	recipes, err := h.favorites.List(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *ClientHandler) ToggleFavorite(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	favorited, err := h.favorites.Toggle(c.Request.Context(), middleware.AccountID(c), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, types.FavoriteResponse{RecipeID: id, Favorited: favorited})
}

func (h *ClientHandler) Dashboard(c *gin.Context) {
	dash, err := h.dashboard.Client(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}
