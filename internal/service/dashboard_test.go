package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/homechef/backend/internal/service"
	"github.com/pageza/homechef/backend/internal/testhelpers"
)

func TestAdminDashboard(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	dash, err := s.dashboard.Admin(ctx)
	require.NoError(t, err)
	assert.Len(t, dash.Users, 5)
	assert.Len(t, dash.Orders, 3)
	for _, u := range dash.Users {
		assert.Empty(t, u.Password)
	}

	st := dash.Stats
	assert.Equal(t, 5, st.TotalUsers)
	assert.Equal(t, 2, st.TotalChefs)
	assert.Equal(t, 2, st.TotalClients)
	assert.Equal(t, 3, st.TotalOrders)
	assert.Equal(t, 1, st.CompletedOrders)
	assert.Equal(t, int64(9900), st.TotalRevenueCents)
	assert.Equal(t, 4.0, st.AvgRating)
	require.Len(t, st.OrdersPerDay, 7)
	assert.Equal(t, "2026-02-06", st.OrdersPerDay[6].Date)
	assert.Equal(t, 1, st.OrdersPerDay[5].Count)

	direct, err := s.dashboard.AdminStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, st, *direct)
}

func TestChefDashboard(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	dash, err := s.dashboard.Chef(ctx, testhelpers.ChefID)
	require.NoError(t, err)
	assert.Len(t, dash.Recipes, 2)
	assert.Len(t, dash.Orders, 2)
	assert.Equal(t, 1, dash.Earnings.CompletedOrders)
	assert.Equal(t, int64(1500), dash.Earnings.TotalEarningsCents)
	assert.Equal(t, int64(1500), dash.Earnings.Last7DaysCents)
	assert.Equal(t, 4.5, dash.Earnings.AvgRating)

	earnings, err := s.dashboard.ChefEarnings(ctx, testhelpers.ChefID)
	require.NoError(t, err)
	assert.Equal(t, dash.Earnings, *earnings)

	_, err = s.dashboard.Chef(ctx, testhelpers.ClientID)
	assert.ErrorIs(t, err, service.ErrChefNotFound)
	_, err = s.dashboard.ChefEarnings(ctx, 999)
	assert.ErrorIs(t, err, service.ErrChefNotFound)
}

func TestClientDashboard(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	_, err := s.favorites.Toggle(ctx, testhelpers.ClientID, testhelpers.TacoID)
	require.NoError(t, err)

	dash, err := s.dashboard.Client(ctx, testhelpers.ClientID)
	require.NoError(t, err)
	assert.Len(t, dash.Recipes, 3)
	assert.Len(t, dash.Orders, 2)
	assert.Equal(t, 1, dash.Summary.Pending)
	assert.Equal(t, 1, dash.Summary.Completed)
	assert.Equal(t, int64(1500), dash.Summary.TotalSpentCents)
	assert.Equal(t, []int64{testhelpers.TacoID}, dash.Favorites)

	// a deleted recipe disappears from the favorites on both views
	require.NoError(t, s.recipes.DeleteRecipe(ctx, testhelpers.TacoID))
	dash, err = s.dashboard.Client(ctx, testhelpers.ClientID)
	require.NoError(t, err)
	assert.Empty(t, dash.Favorites)
	listed, err := s.favorites.List(ctx, testhelpers.ClientID)
	require.NoError(t, err)
	assert.Empty(t, listed)

	_, err = s.dashboard.Client(ctx, testhelpers.AdminID)
	assert.ErrorIs(t, err, service.ErrClientNotFound)
}

func TestFavorites(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	on, err := s.favorites.Toggle(ctx, testhelpers.ClientID, testhelpers.SoupID)
	require.NoError(t, err)
	assert.True(t, on)
	_, err = s.favorites.Toggle(ctx, testhelpers.ClientID, testhelpers.PastaID)
	require.NoError(t, err)

	assert.Equal(t, []int64{testhelpers.PastaID, testhelpers.SoupID}, s.favorites.IDs(testhelpers.ClientID))
	assert.Empty(t, s.favorites.IDs(testhelpers.OtherID))

	off, err := s.favorites.Toggle(ctx, testhelpers.ClientID, testhelpers.SoupID)
	require.NoError(t, err)
	assert.False(t, off)

	_, err = s.favorites.Toggle(ctx, testhelpers.ClientID, 404)
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)

	require.NoError(t, s.recipes.DeleteRecipe(ctx, testhelpers.PastaID))
	list, err := s.favorites.List(ctx, testhelpers.ClientID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
