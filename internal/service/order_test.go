package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/homechef/backend/internal/models"
	"github.com/pageza/homechef/backend/internal/service"
	"github.com/pageza/homechef/backend/internal/testhelpers"
	"github.com/pageza/homechef/backend/internal/types"
)

func TestCreateOrder(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	order, err := s.orders.CreateOrder(ctx, testhelpers.ClientID, &types.CreateOrderRequest{RecipeID: testhelpers.PastaID, Quantity: 3})
	require.NoError(t, err)

	assert.Equal(t, int64(4), order.ID)
	assert.Equal(t, int64(5400), order.AmountCents)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, "2026-02-07", order.PickupDate)
	assert.Equal(t, "2026-02-06", order.CreatedOn)
	assert.Equal(t, service.DefaultPickupTime, order.PickupTime)
	assert.Equal(t, testhelpers.ChefID, order.ChefID)
	assert.Equal(t, "Client 1", order.ClientName)
	assert.Nil(t, order.Rating)

	recipe, err := s.store.GetRecipe(ctx, testhelpers.PastaID)
	require.NoError(t, err)
	assert.Equal(t, 11, recipe.OrdersCount)

	require.Len(t, s.events.events, 1)
	assert.Equal(t, models.OrderCreatedEvent{OrderID: 4, ClientID: testhelpers.ClientID, ChefID: testhelpers.ChefID, RecipeID: testhelpers.PastaID, AmountCents: 5400}, s.events.events[0])
}

func TestCreateOrderValidation(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	_, err := s.orders.CreateOrder(ctx, testhelpers.ClientID, &types.CreateOrderRequest{RecipeID: testhelpers.PastaID, Quantity: 0})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	_, err = s.orders.CreateOrder(ctx, testhelpers.ClientID, &types.CreateOrderRequest{RecipeID: testhelpers.PastaID, Quantity: 11})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	_, err = s.orders.CreateOrder(ctx, testhelpers.ClientID, &types.CreateOrderRequest{RecipeID: testhelpers.PastaID, Quantity: 1, PickupTime: "25:99"})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	_, err = s.orders.CreateOrder(ctx, testhelpers.ClientID, &types.CreateOrderRequest{RecipeID: 404, Quantity: 1})
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
	_, err = s.orders.CreateOrder(ctx, testhelpers.ChefID, &types.CreateOrderRequest{RecipeID: testhelpers.PastaID, Quantity: 1})
	assert.ErrorIs(t, err, service.ErrClientNotFound)

	assert.Empty(t, s.events.events)
}

func TestOrderTransitions(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	order, err := s.orders.CompleteOrder(ctx, testhelpers.PendingOrderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderCompleted, order.Status)

	_, err = s.orders.CancelOrder(ctx, testhelpers.PendingOrderID)
	assert.ErrorIs(t, err, service.ErrInvalidTransition)
	_, err = s.orders.CompleteOrder(ctx, testhelpers.CancelledOrderID)
	assert.ErrorIs(t, err, service.ErrInvalidTransition)
	_, err = s.orders.CancelOrder(ctx, 404)
	assert.ErrorIs(t, err, service.ErrOrderNotFound)

	stored, err := s.store.GetOrder(ctx, testhelpers.CancelledOrderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, stored.Status)

	require.Len(t, s.events.events, 1)
	assert.Equal(t, models.OrderCompletedEvent{OrderID: testhelpers.PendingOrderID, ChefID: testhelpers.ChefID}, s.events.events[0])
}

func TestCancelOrder(t *testing.T) {
	s := setup(t)
	order, err := s.orders.CancelOrder(context.Background(), testhelpers.PendingOrderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, order.Status)
	assert.Equal(t, models.OrderCancelledEvent{OrderID: testhelpers.PendingOrderID, ChefID: testhelpers.ChefID}, s.events.events[0])
}

func TestRateOrder(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	_, err := s.orders.RateOrder(ctx, testhelpers.PendingOrderID, 5)
	assert.ErrorIs(t, err, service.ErrNotRateable)
	_, err = s.orders.RateOrder(ctx, testhelpers.CancelledOrderID, 5)
	assert.ErrorIs(t, err, service.ErrNotRateable)
	_, err = s.orders.RateOrder(ctx, testhelpers.CompletedOrderID, 6)
	assert.ErrorIs(t, err, service.ErrInvalidRating)
	_, err = s.orders.RateClientOrder(ctx, testhelpers.OtherID, testhelpers.CompletedOrderID, 2)
	assert.ErrorIs(t, err, service.ErrForbidden)

	order, err := s.orders.RateClientOrder(ctx, testhelpers.ClientID, testhelpers.CompletedOrderID, 2)
	require.NoError(t, err)
	require.NotNil(t, order.Rating)
	assert.Equal(t, 2, *order.Rating)

	recipe, err := s.store.GetRecipe(ctx, testhelpers.SoupID)
	require.NoError(t, err)
	assert.Equal(t, 2.0, recipe.Rating)

	// a second completed, rated order moves the mean
	_, err = s.orders.CompleteOrder(ctx, testhelpers.PendingOrderID)
	require.NoError(t, err)
	pending, err := s.store.GetOrder(ctx, testhelpers.PendingOrderID)
	require.NoError(t, err)
	pending.RecipeID = testhelpers.SoupID
	require.NoError(t, s.store.UpdateOrder(ctx, pending))
	_, err = s.orders.RateOrder(ctx, testhelpers.PendingOrderID, 5)
	require.NoError(t, err)

	recipe, err = s.store.GetRecipe(ctx, testhelpers.SoupID)
	require.NoError(t, err)
	assert.Equal(t, 3.5, recipe.Rating)

	last := s.events.events[len(s.events.events)-1]
	assert.Equal(t, models.OrderRatedEvent{OrderID: testhelpers.PendingOrderID, RecipeID: testhelpers.SoupID, Rating: 5}, last)
}

func TestRateOrderAfterRecipeDeleted(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	require.NoError(t, s.recipes.DeleteRecipe(ctx, testhelpers.SoupID))
	order, err := s.orders.RateOrder(ctx, testhelpers.CompletedOrderID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, *order.Rating)
}

func TestListOrdersByStatus(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	pending, err := s.orders.ListOrdersByStatus(ctx, models.OrderPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, testhelpers.PendingOrderID, pending[0].ID)

	_, err = s.orders.CancelOrder(ctx, testhelpers.PendingOrderID)
	require.NoError(t, err)

	cancelled, err := s.orders.ListOrdersByStatus(ctx, models.OrderCancelled)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{testhelpers.PendingOrderID, testhelpers.CancelledOrderID},
		[]int64{cancelled[0].ID, cancelled[1].ID})
}
