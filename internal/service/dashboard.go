package service

import (
	"context"
	"errors"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/pageza/homechef/backend/internal/models"
	"github.com/pageza/homechef/backend/internal/stats"
	"github.com/pageza/homechef/backend/internal/types"
)

// DashboardService assembles the per-role read models
type DashboardService struct {
	accounts  IAccountService
	recipes   IRecipeService
	orders    IOrderService
	favorites IFavoriteService
	today     func() time.Time
}

func NewDashboardService(accounts IAccountService, recipes IRecipeService, orders IOrderService, favorites IFavoriteService, today func() time.Time) *DashboardService {
	return &DashboardService{
		accounts:  accounts,
		recipes:   recipes,
		orders:    orders,
		favorites: favorites,
		today:     today,
	}
}

type adminData struct {
	accounts []models.Account
	recipes  []models.Recipe
	orders   []models.Order
}

// load reads the directory, catalog and ledger concurrently
func (s *DashboardService) load(ctx context.Context) (*adminData, error) {
	var data adminData
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		data.accounts, err = s.accounts.ListAccounts(ctx)
		return err
	})
	g.Go(func() (err error) {
		data.recipes, err = s.recipes.ListRecipes(ctx)
		return err
	})
	g.Go(func() (err error) {
		data.orders, err = s.orders.ListOrders(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}

func (d *adminData) stats(today time.Time) stats.AdminStats {
	return stats.Compute(stats.Snapshot{Accounts: d.accounts, Recipes: d.recipes, Orders: d.orders}, today)
}

// AdminStats computes the platform-wide summary
func (s *DashboardService) AdminStats(ctx context.Context) (*stats.AdminStats, error) {
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	st := data.stats(s.today())
	return &st, nil
}

// Admin returns stats together with every account and order
func (s *DashboardService) Admin(ctx context.Context) (*types.AdminDashboard, error) {
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return &types.AdminDashboard{
		Stats:  data.stats(s.today()),
		Users:  data.accounts,
		Orders: data.orders,
	}, nil
}

func (s *DashboardService) loadChef(ctx context.Context, chefID int64) ([]models.Recipe, []models.Order, error) {
	account, err := s.accounts.GetAccount(ctx, chefID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, nil, ErrChefNotFound
		}
		return nil, nil, err
	}
	if account.Role != models.RoleChef {
		return nil, nil, ErrChefNotFound
	}

	var (
		recipes []models.Recipe
		orders  []models.Order
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		recipes, err = s.recipes.ListRecipesByChef(ctx, chefID)
		return err
	})
	g.Go(func() (err error) {
		orders, err = s.orders.ListOrdersByChef(ctx, chefID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return recipes, orders, nil
}

// ChefEarnings summarizes one chef's completed orders
func (s *DashboardService) ChefEarnings(ctx context.Context, chefID int64) (*stats.Earnings, error) {
	recipes, orders, err := s.loadChef(ctx, chefID)
	if err != nil {
		return nil, err
	}
	e := stats.ChefEarnings(orders, recipes, s.today())
	return &e, nil
}

// Chef returns a chef's recipes, incoming orders and earnings
func (s *DashboardService) Chef(ctx context.Context, chefID int64) (*types.ChefDashboard, error) {
	recipes, orders, err := s.loadChef(ctx, chefID)
	if err != nil {
		return nil, err
	}
	return &types.ChefDashboard{
		Recipes:  recipes,
		Orders:   orders,
		Earnings: stats.ChefEarnings(orders, recipes, s.today()),
	}, nil
}

// Client returns the catalog, the client's own orders and favorites
func (s *DashboardService) Client(ctx context.Context, clientID int64) (*types.ClientDashboard, error) {
	account, err := s.accounts.GetAccount(ctx, clientID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	if account.Role != models.RoleClient {
		return nil, ErrClientNotFound
	}

	var (
		recipes []models.Recipe
		orders  []models.Order
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		recipes, err = s.recipes.ListRecipes(ctx)
		return err
	})
	g.Go(func() (err error) {
		orders, err = s.orders.ListOrdersByClient(ctx, clientID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &types.ClientDashboard{
		Recipes:   recipes,
		Orders:    orders,
		Summary:   stats.ClientSummary(orders),
		Favorites: liveFavorites(s.favorites.IDs(clientID), recipes),
	}, nil
}

// liveFavorites drops favorite ids whose recipe has left the catalog
func liveFavorites(ids []int64, catalog []models.Recipe) []int64 {
	live := lo.Map(catalog, func(r models.Recipe, _ int) int64 { return r.ID })
	return lo.Filter(ids, func(id int64, _ int) bool { return lo.Contains(live, id) })
}
