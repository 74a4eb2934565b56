package types

import (
	"github.com/pageza/homechef/backend/internal/models"
)

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse mirrors the dashboard's login contract. Error is set only
// when Success is false.
type LoginResponse struct {
	Success bool            `json:"success"`
	User    *models.Account `json:"user,omitempty"`
	Token   string          `json:"token,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// CreateRecipeRequest represents the request body for publishing a recipe
type CreateRecipeRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents" binding:"required"`
	Servings    int    `json:"servings" binding:"required"`
	CookTime    int    `json:"cookTime" binding:"required"`
}

// CreateOrderRequest represents the request body for placing an order.
// PickupTime defaults to 18:00 when empty.
type CreateOrderRequest struct {
	RecipeID   int64  `json:"recipeId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required"`
	PickupTime string `json:"pickupTime"`
}

// RateOrderRequest represents the request body for rating a completed order
type RateOrderRequest struct {
	Rating int `json:"rating" binding:"required"`
}

// FavoriteResponse reports the state of a favorite after a toggle
type FavoriteResponse struct {
	RecipeID  int64 `json:"recipeId"`
	Favorited bool  `json:"favorited"`
}

// ReportResponse locates an archived stats report
type ReportResponse struct {
	Key string `json:"key"`
	URL string `json:"url,omitempty"`
}
