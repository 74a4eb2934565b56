package service

import (
	"context"
	"time"

	"github.com/pageza/homechef/backend/internal/models"
	"github.com/pageza/homechef/backend/internal/stats"
	"github.com/pageza/homechef/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Login(ctx context.Context, email, password string) (*models.Account, string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IAccountService defines the interface for user directory reads
type IAccountService interface {
	ListAccounts(ctx context.Context) ([]models.Account, error)
	GetAccount(ctx context.Context, id int64) (*models.Account, error)
}

// IRecipeService defines the interface for catalog operations
type IRecipeService interface {
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	ListRecipesByChef(ctx context.Context, chefID int64) ([]models.Recipe, error)
	CreateRecipe(ctx context.Context, chefID int64, req *types.CreateRecipeRequest) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, recipeID int64) error
	DeleteChefRecipe(ctx context.Context, chefID, recipeID int64) error
}

// IOrderService defines the interface for ledger operations
type IOrderService interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	ListOrdersByClient(ctx context.Context, clientID int64) ([]models.Order, error)
	ListOrdersByChef(ctx context.Context, chefID int64) ([]models.Order, error)
	ListOrdersByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	CreateOrder(ctx context.Context, clientID int64, req *types.CreateOrderRequest) (*models.Order, error)
	CompleteOrder(ctx context.Context, orderID int64) (*models.Order, error)
	CancelOrder(ctx context.Context, orderID int64) (*models.Order, error)
	RateOrder(ctx context.Context, orderID int64, rating int) (*models.Order, error)
	RateClientOrder(ctx context.Context, clientID, orderID int64, rating int) (*models.Order, error)
}

// IDashboardService defines the per-role read models
type IDashboardService interface {
	AdminStats(ctx context.Context) (*stats.AdminStats, error)
	ChefEarnings(ctx context.Context, chefID int64) (*stats.Earnings, error)
	Admin(ctx context.Context) (*types.AdminDashboard, error)
	Chef(ctx context.Context, chefID int64) (*types.ChefDashboard, error)
	Client(ctx context.Context, clientID int64) (*types.ClientDashboard, error)
}

// IFavoriteService defines the interface for client favorites
type IFavoriteService interface {
	Toggle(ctx context.Context, clientID, recipeID int64) (bool, error)
	List(ctx context.Context, clientID int64) ([]models.Recipe, error)
	IDs(clientID int64) []int64
}

// IReportService defines the interface for archiving stats reports
type IReportService interface {
	Archive(ctx context.Context) (*types.ReportResponse, error)
}

// EventDispatcher receives domain events after a state change commits
type EventDispatcher interface {
	Dispatch(ctx context.Context, event models.Event) error
}

// ReportStore is the object storage used for report archives
type ReportStore interface {
	PutJSON(ctx context.Context, key string, body []byte) error
	GeneratePresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error)
}
