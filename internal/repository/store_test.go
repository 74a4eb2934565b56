package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/homechef/backend/internal/models"
	"github.com/pageza/homechef/backend/internal/repository"
)

// runStoreSuite exercises the repository.Store contract against any backend
func runStoreSuite(t *testing.T, newStore func(t *testing.T) repository.Store) {
	ctx := context.Background()

	t.Run("accounts", func(t *testing.T) {
		s := newStore(t)
		chef := &models.Account{Name: "Chef One", Email: "chef1@homechef.com", Password: "chef123", Role: models.RoleChef}
		require.NoError(t, s.CreateAccount(ctx, chef))
		assert.NotZero(t, chef.ID)

		dup := &models.Account{Name: "Other", Email: "CHEF1@homechef.com", Password: "x", Role: models.RoleClient}
		assert.ErrorIs(t, s.CreateAccount(ctx, dup), repository.ErrDuplicateEmail)

		found, err := s.FindAccountByEmail(ctx, "Chef1@HomeChef.com")
		require.NoError(t, err)
		assert.Equal(t, chef.ID, found.ID)

		_, err = s.GetAccount(ctx, 999)
		assert.ErrorIs(t, err, repository.ErrNotFound)

		all, err := s.ListAccounts(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("recipe ids grow past every existing id", func(t *testing.T) {
		s := newStore(t)
		first := &models.Recipe{ID: 7, ChefID: 3, Title: "Pasta", PriceCents: 1800, Servings: 2, CookTimeMinutes: 20, CreatedOn: "2026-02-01"}
		require.NoError(t, s.CreateRecipe(ctx, first))

		next := &models.Recipe{ChefID: 3, Title: "Soup", PriceCents: 1400, Servings: 2, CookTimeMinutes: 30, CreatedOn: "2026-02-02"}
		require.NoError(t, s.CreateRecipe(ctx, next))
		assert.Equal(t, int64(8), next.ID)

		other := &models.Recipe{ChefID: 4, Title: "Tacos", PriceCents: 1600, Servings: 3, CookTimeMinutes: 25, CreatedOn: "2026-02-03"}
		require.NoError(t, s.CreateRecipe(ctx, other))
		assert.Greater(t, other.ID, next.ID)

		mine, err := s.ListRecipes(ctx, repository.RecipeFilter{ChefID: 3})
		require.NoError(t, err)
		assert.Len(t, mine, 2)
	})

	t.Run("delete removes exactly one recipe", func(t *testing.T) {
		s := newStore(t)
		for _, title := range []string{"A", "B", "C"} {
			require.NoError(t, s.CreateRecipe(ctx, &models.Recipe{ChefID: 3, Title: title, PriceCents: 1500, Servings: 2, CookTimeMinutes: 15, CreatedOn: "2026-02-01"}))
		}
		before, err := s.ListRecipes(ctx, repository.RecipeFilter{})
		require.NoError(t, err)

		require.NoError(t, s.DeleteRecipe(ctx, before[1].ID))
		after, err := s.ListRecipes(ctx, repository.RecipeFilter{})
		require.NoError(t, err)
		require.Len(t, after, 2)
		assert.Equal(t, before[0], after[0])
		assert.Equal(t, before[2], after[1])

		assert.ErrorIs(t, s.DeleteRecipe(ctx, before[1].ID), repository.ErrNotFound)
	})

	t.Run("orders", func(t *testing.T) {
		s := newStore(t)
		o := &models.Order{ClientID: 11, ChefID: 3, RecipeID: 1, Quantity: 2, AmountCents: 3600, Status: models.OrderPending, CreatedOn: "2026-02-06"}
		require.NoError(t, s.CreateOrder(ctx, o))
		require.NoError(t, s.CreateOrder(ctx, &models.Order{ClientID: 12, ChefID: 4, RecipeID: 2, Quantity: 1, AmountCents: 1400, Status: models.OrderCancelled, CreatedOn: "2026-02-05"}))

		rating := 4
		o.Status = models.OrderCompleted
		o.Rating = &rating
		require.NoError(t, s.UpdateOrder(ctx, o))

		got, err := s.GetOrder(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, models.OrderCompleted, got.Status)
		require.NotNil(t, got.Rating)
		assert.Equal(t, 4, *got.Rating)

		byClient, err := s.ListOrders(ctx, repository.OrderFilter{ClientID: 11})
		require.NoError(t, err)
		assert.Len(t, byClient, 1)

		cancelled, err := s.ListOrders(ctx, repository.OrderFilter{Status: models.OrderCancelled})
		require.NoError(t, err)
		assert.Len(t, cancelled, 1)

		assert.ErrorIs(t, s.UpdateOrder(ctx, &models.Order{ID: 404}), repository.ErrNotFound)
	})

	t.Run("transaction rolls back on error", func(t *testing.T) {
		s := newStore(t)
		r := &models.Recipe{ChefID: 3, Title: "Curry", PriceCents: 2200, Servings: 4, CookTimeMinutes: 40, CreatedOn: "2026-02-01"}
		require.NoError(t, s.CreateRecipe(ctx, r))

		boom := errors.New("boom")
		err := s.WithTransaction(ctx, func(ctx context.Context) error {
			got, err := s.GetRecipe(ctx, r.ID)
			if err != nil {
				return err
			}
			got.OrdersCount++
			if err := s.UpdateRecipe(ctx, got); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		if _, ok := s.(*repository.GormStore); ok {
			got, err := s.GetRecipe(ctx, r.ID)
			require.NoError(t, err)
			assert.Equal(t, 0, got.OrdersCount)
		}
	})
}
