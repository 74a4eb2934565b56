package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/homechef/backend/internal/models"
	"github.com/pageza/homechef/backend/internal/repository"
)

func TestMemoryStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) repository.Store { return repository.NewMemoryStore() })
}

func TestMemoryStoreDoesNotReuseDeletedIDs(t *testing.T) {
	ctx := context.Background()
	s := repository.NewMemoryStore()

	r := &models.Recipe{ChefID: 3, Title: "Pasta", PriceCents: 1800, Servings: 2, CookTimeMinutes: 20}
	require.NoError(t, s.CreateRecipe(ctx, r))
	require.NoError(t, s.DeleteRecipe(ctx, r.ID))

	again := &models.Recipe{ChefID: 3, Title: "Pasta", PriceCents: 1800, Servings: 2, CookTimeMinutes: 20}
	require.NoError(t, s.CreateRecipe(ctx, again))
	assert.Greater(t, again.ID, r.ID)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := repository.NewMemoryStore()

	rating := 3
	o := &models.Order{ClientID: 11, Status: models.OrderCompleted, Rating: &rating}
	require.NoError(t, s.CreateOrder(ctx, o))
	rating = 1

	got, err := s.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	*got.Rating = 5

	again, err := s.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, *again.Rating)
}

func TestMemoryStoreConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	s := repository.NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.WithTransaction(ctx, func(ctx context.Context) error {
				return s.CreateOrder(ctx, &models.Order{ClientID: 11, Status: models.OrderPending})
			})
		}()
	}
	wg.Wait()

	orders, err := s.ListOrders(ctx, repository.OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, orders, 50)
	seen := map[int64]bool{}
	for _, o := range orders {
		assert.False(t, seen[o.ID])
		seen[o.ID] = true
	}
}
