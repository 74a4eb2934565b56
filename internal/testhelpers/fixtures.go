package testhelpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pageza/homechef/backend/internal/models"
	"github.com/pageza/homechef/backend/internal/repository"
)

// Fixture ids used across service and api tests
const (
	AdminID  int64 = 1
	ChefID   int64 = 3
	ChefTwo  int64 = 4
	ClientID int64 = 11
	OtherID  int64 = 12

	PastaID int64 = 1
	SoupID  int64 = 2
	TacoID  int64 = 3

	PendingOrderID   int64 = 1
	CompletedOrderID int64 = 2
	CancelledOrderID int64 = 3
)

// NewFixtureStore returns a memory store holding a small, fully known dataset
func NewFixtureStore(t *testing.T) *repository.MemoryStore {
	t.Helper()
	ctx := context.Background()
	store := repository.NewMemoryStore()

	accounts := []models.Account{
		{ID: AdminID, Name: "Admin System", Email: "admin@homechef.com", Password: "admin123", Role: models.RoleAdmin},
		{ID: ChefID, Name: "Juan Chef", Email: "chef1@homechef.com", Password: "chef123", Role: models.RoleChef},
		{ID: ChefTwo, Name: "María García", Email: "chef2@homechef.com", Password: "chef123", Role: models.RoleChef},
		{ID: ClientID, Name: "Client 1", Email: "client1@homechef.com", Password: "client123", Role: models.RoleClient},
		{ID: OtherID, Name: "Client 2", Email: "client2@homechef.com", Password: "client123", Role: models.RoleClient},
	}
	for i := range accounts {
		require.NoError(t, store.CreateAccount(ctx, &accounts[i]))
	}

	recipes := []models.Recipe{
		{ID: PastaID, ChefID: ChefID, ChefName: "Juan Chef", Title: "Pasta Carbonara - Juan Chef", PriceCents: 1800, Servings: 2, CookTimeMinutes: 20, Rating: 4, OrdersCount: 10, CreatedOn: "2026-01-20"},
		{ID: SoupID, ChefID: ChefID, ChefName: "Juan Chef", Title: "Mushroom Risotto - Juan Chef", PriceCents: 1500, Servings: 3, CookTimeMinutes: 35, Rating: 5, OrdersCount: 7, CreatedOn: "2026-01-25"},
		{ID: TacoID, ChefID: ChefTwo, ChefName: "María García", Title: "Roast Chicken - María García", PriceCents: 1600, Servings: 4, CookTimeMinutes: 40, Rating: 3, OrdersCount: 5, CreatedOn: "2026-01-28"},
	}
	for i := range recipes {
		require.NoError(t, store.CreateRecipe(ctx, &recipes[i]))
	}

	rating := 4
	orders := []models.Order{
		{ID: PendingOrderID, ClientID: ClientID, ClientName: "Client 1", ChefID: ChefID, ChefName: "Juan Chef", RecipeID: PastaID, RecipeName: recipes[0].Title, Quantity: 2, AmountCents: 3600, Status: models.OrderPending, PickupDate: "2026-02-07", PickupTime: "12:30", CreatedOn: "2026-02-05"},
		{ID: CompletedOrderID, ClientID: ClientID, ClientName: "Client 1", ChefID: ChefID, ChefName: "Juan Chef", RecipeID: SoupID, RecipeName: recipes[1].Title, Quantity: 1, AmountCents: 1500, Status: models.OrderCompleted, PickupDate: "2026-02-03", PickupTime: "19:00", Rating: &rating, CreatedOn: "2026-02-02"},
		{ID: CancelledOrderID, ClientID: OtherID, ClientName: "Client 2", ChefID: ChefTwo, ChefName: "María García", RecipeID: TacoID, RecipeName: recipes[2].Title, Quantity: 3, AmountCents: 4800, Status: models.OrderCancelled, PickupDate: "2026-02-06", PickupTime: "20:15", CreatedOn: "2026-02-04"},
	}
	for i := range orders {
		require.NoError(t, store.CreateOrder(ctx, &orders[i]))
	}
	return store
}
