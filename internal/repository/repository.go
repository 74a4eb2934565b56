package repository

import (
	"context"
	"errors"

	"github.com/pageza/homechef/backend/internal/models"
)

var (
	// ErrNotFound is returned when an entity does not exist
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when an account email is already taken
	ErrDuplicateEmail = errors.New("email already registered")
)

// RecipeFilter narrows a recipe listing. Zero values match everything.
type RecipeFilter struct {
	ChefID int64
}

// OrderFilter narrows an order listing. Zero values match everything.
type OrderFilter struct {
	ClientID int64
	ChefID   int64
	RecipeID int64
	Status   models.OrderStatus
}

// AccountRepository reads and writes the user directory
type AccountRepository interface {
	CreateAccount(ctx context.Context, a *models.Account) error
	GetAccount(ctx context.Context, id int64) (*models.Account, error)
	FindAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)
}

// RecipeRepository reads and writes the recipe catalog.
// CreateRecipe assigns an id above every id already stored when r.ID is zero.
type RecipeRepository interface {
	CreateRecipe(ctx context.Context, r *models.Recipe) error
	GetRecipe(ctx context.Context, id int64) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, r *models.Recipe) error
	DeleteRecipe(ctx context.Context, id int64) error
	ListRecipes(ctx context.Context, f RecipeFilter) ([]models.Recipe, error)
}

// OrderRepository reads and writes the order ledger
type OrderRepository interface {
	CreateOrder(ctx context.Context, o *models.Order) error
	GetOrder(ctx context.Context, id int64) (*models.Order, error)
	UpdateOrder(ctx context.Context, o *models.Order) error
	ListOrders(ctx context.Context, f OrderFilter) ([]models.Order, error)
}

// TxManager runs fn so that its reads and writes see one consistent store
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Store bundles every repository behind one backend
type Store interface {
	AccountRepository
	RecipeRepository
	OrderRepository
	TxManager
}

func (f OrderFilter) match(o models.Order) bool {
	if f.ClientID != 0 && o.ClientID != f.ClientID {
		return false
	}
	if f.ChefID != 0 && o.ChefID != f.ChefID {
		return false
	}
	if f.RecipeID != 0 && o.RecipeID != f.RecipeID {
		return false
	}
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	return true
}

func (f RecipeFilter) match(r models.Recipe) bool {
	return f.ChefID == 0 || r.ChefID == f.ChefID
}
