package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/homechef/backend/internal/models"
	"github.com/pageza/homechef/backend/internal/service"
)

// AdminHandler serves the platform-wide views and order moderation
type AdminHandler struct {
	accounts  service.IAccountService
	recipes   service.IRecipeService
	orders    service.IOrderService
	dashboard service.IDashboardService
	reports   service.IReportService
	log       logrus.FieldLogger
}

func NewAdminHandler(accounts service.IAccountService, recipes service.IRecipeService, orders service.IOrderService, dashboard service.IDashboardService, reports service.IReportService, log logrus.FieldLogger) *AdminHandler {
	return &AdminHandler{
		accounts:  accounts,
		recipes:   recipes,
		orders:    orders,
		dashboard: dashboard,
		reports:   reports,
		log:       log,
	}
}

// RegisterRoutes expects router to already enforce the admin role
func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/stats", h.Stats)
	router.GET("/users", h.Users)
	router.GET("/orders", h.Orders)
	router.GET("/dashboard", h.Dashboard)
	router.POST("/reports", h.ArchiveReport)
	router.DELETE("/recipes/:id", h.DeleteRecipe)
	router.POST("/orders/:id/complete", h.CompleteOrder)
	router.POST("/orders/:id/cancel", h.CancelOrder)
}

func (h *AdminHandler) Stats(c *gin.Context) {
	st, err := h.dashboard.AdminStats(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.accounts.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// Orders lists the ledger, optionally narrowed by ?status=pending|completed|cancelled
func (h *AdminHandler) Orders(c *gin.Context) {
	var (
		orders []models.Order
		err    error
	)
	if raw := c.Query("status"); raw != "" {
		status, perr := models.ParseOrderStatus(raw)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": perr.Error()})
			return
		}
		orders, err = h.orders.ListOrdersByStatus(c.Request.Context(), status)
	} else {
		orders, err = h.orders.ListOrders(c.Request.Context())
	}
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	dash, err := h.dashboard.Admin(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}

func (h *AdminHandler) ArchiveReport(c *gin.Context) {
	report, err := h.reports.Archive(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

func (h *AdminHandler) CompleteOrder(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	order, err := h.orders.CompleteOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *AdminHandler) CancelOrder(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	order, err := h.orders.CancelOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// DeleteRecipe removes any chef's recipe from the catalog
func (h *AdminHandler) DeleteRecipe(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.recipes.DeleteRecipe(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
