package types

import (
	"github.com/pageza/homechef/backend/internal/models"
	"github.com/pageza/homechef/backend/internal/stats"
)

// AdminDashboard is everything the admin view renders
type AdminDashboard struct {
	Stats  stats.AdminStats `json:"stats"`
	Users  []models.Account `json:"users"`
	Orders []models.Order   `json:"orders"`
}

// ChefDashboard is everything the chef view renders
type ChefDashboard struct {
	Recipes  []models.Recipe `json:"recipes"`
	Orders   []models.Order  `json:"orders"`
	Earnings stats.Earnings  `json:"earnings"`
}

// ClientDashboard is everything the client view renders
type ClientDashboard struct {
	Recipes   []models.Recipe `json:"recipes"`
	Orders    []models.Order  `json:"orders"`
	Summary   stats.Summary   `json:"summary"`
	Favorites []int64         `json:"favorites"`
}
