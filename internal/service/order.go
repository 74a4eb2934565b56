package service

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/pageza/homechef/backend/internal/models"
	"github.com/pageza/homechef/backend/internal/repository"
	"github.com/pageza/homechef/backend/internal/stats"
	"github.com/pageza/homechef/backend/internal/types"
)

const (
	MinOrderQuantity  = 1
	MaxOrderQuantity  = 10
	DefaultPickupTime = "18:00"
)

// OrderService handles ledger operations and order lifecycle transitions
type OrderService struct {
	store   repository.Store
	latency Latency
	today   func() time.Time
	events  EventDispatcher
	log     logrus.FieldLogger
}

func NewOrderService(store repository.Store, latency Latency, today func() time.Time, events EventDispatcher, log logrus.FieldLogger) *OrderService {
	return &OrderService{
		store:   store,
		latency: latency,
		today:   today,
		events:  events,
		log:     log,
	}
}

func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.list(ctx, repository.OrderFilter{})
}

func (s *OrderService) ListOrdersByClient(ctx context.Context, clientID int64) ([]models.Order, error) {
	return s.list(ctx, repository.OrderFilter{ClientID: clientID})
}

func (s *OrderService) ListOrdersByChef(ctx context.Context, chefID int64) ([]models.Order, error) {
	return s.list(ctx, repository.OrderFilter{ChefID: chefID})
}

func (s *OrderService) ListOrdersByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	return s.list(ctx, repository.OrderFilter{Status: status})
}

func (s *OrderService) list(ctx context.Context, f repository.OrderFilter) ([]models.Order, error) {
	if err := s.latency.read(ctx); err != nil {
		return nil, err
	}
	return s.store.ListOrders(ctx, f)
}

// CreateOrder places a pending order for pickup tomorrow. The amount is fixed
// from the recipe price at creation and the recipe's order count goes up by one.
func (s *OrderService) CreateOrder(ctx context.Context, clientID int64, req *types.CreateOrderRequest) (*models.Order, error) {
	if req == nil {
		return nil, pkgerrors.Wrap(ErrInvalidInput, "order is required")
	}
	if req.Quantity < MinOrderQuantity || req.Quantity > MaxOrderQuantity {
		return nil, pkgerrors.Wrapf(ErrInvalidInput, "quantity must be between %d and %d", MinOrderQuantity, MaxOrderQuantity)
	}
	pickupTime := req.PickupTime
	if pickupTime == "" {
		pickupTime = DefaultPickupTime
	}
	if _, err := time.Parse("15:04", pickupTime); err != nil {
		return nil, pkgerrors.Wrap(ErrInvalidInput, "pickup time must be HH:MM")
	}
	if err := s.latency.write(ctx); err != nil {
		return nil, err
	}

	today := s.today()
	var order *models.Order
	err := s.store.WithTransaction(ctx, func(ctx context.Context) error {
		client, err := accountWithRole(ctx, s.store, clientID, models.RoleClient, ErrClientNotFound)
		if err != nil {
			return err
		}
		recipe, err := s.store.GetRecipe(ctx, req.RecipeID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrRecipeNotFound
			}
			return err
		}

		order = &models.Order{
			ClientID:    client.ID,
			ClientName:  client.Name,
			ChefID:      recipe.ChefID,
			ChefName:    recipe.ChefName,
			RecipeID:    recipe.ID,
			RecipeName:  recipe.Title,
			Quantity:    req.Quantity,
			AmountCents: recipe.PriceCents * int64(req.Quantity),
			Status:      models.OrderPending,
			PickupDate:  models.DateOf(today.AddDate(0, 0, 1)),
			PickupTime:  pickupTime,
			CreatedOn:   models.DateOf(today),
		}
		if err := s.store.CreateOrder(ctx, order); err != nil {
			return err
		}

		recipe.OrdersCount++
		return s.store.UpdateRecipe(ctx, recipe)
	})
	if err != nil {
		return nil, err
	}

	dispatch(ctx, s.events, s.log, models.OrderCreatedEvent{
		OrderID:     order.ID,
		ClientID:    order.ClientID,
		ChefID:      order.ChefID,
		RecipeID:    order.RecipeID,
		AmountCents: order.AmountCents,
	})
	return order, nil
}

// CompleteOrder moves a pending order to completed
func (s *OrderService) CompleteOrder(ctx context.Context, orderID int64) (*models.Order, error) {
	order, err := s.transition(ctx, orderID, models.OrderCompleted)
	if err != nil {
		return nil, err
	}
	dispatch(ctx, s.events, s.log, models.OrderCompletedEvent{OrderID: order.ID, ChefID: order.ChefID})
	return order, nil
}

// CancelOrder moves a pending order to cancelled
func (s *OrderService) CancelOrder(ctx context.Context, orderID int64) (*models.Order, error) {
	order, err := s.transition(ctx, orderID, models.OrderCancelled)
	if err != nil {
		return nil, err
	}
	dispatch(ctx, s.events, s.log, models.OrderCancelledEvent{OrderID: order.ID, ChefID: order.ChefID})
	return order, nil
}

func (s *OrderService) transition(ctx context.Context, orderID int64, next models.OrderStatus) (*models.Order, error) {
	if err := s.latency.write(ctx); err != nil {
		return nil, err
	}
	var order *models.Order
	err := s.store.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		if order, err = s.getOrder(ctx, orderID); err != nil {
			return err
		}
		if err := order.Transition(next); err != nil {
			return err
		}
		return s.store.UpdateOrder(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// RateOrder records a 1 to 5 rating on a completed order. Rating again
// replaces the earlier value. The recipe's rating becomes the mean of its
// rated orders.
func (s *OrderService) RateOrder(ctx context.Context, orderID int64, rating int) (*models.Order, error) {
	return s.rate(ctx, 0, orderID, rating)
}

// RateClientOrder is RateOrder restricted to orders placed by clientID
func (s *OrderService) RateClientOrder(ctx context.Context, clientID, orderID int64, rating int) (*models.Order, error) {
	return s.rate(ctx, clientID, orderID, rating)
}

func (s *OrderService) rate(ctx context.Context, clientID, orderID int64, rating int) (*models.Order, error) {
	if err := s.latency.write(ctx); err != nil {
		return nil, err
	}
	var order *models.Order
	err := s.store.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		if order, err = s.getOrder(ctx, orderID); err != nil {
			return err
		}
		if clientID != 0 && order.ClientID != clientID {
			return ErrForbidden
		}
		if err := order.Rate(rating); err != nil {
			return err
		}
		if err := s.store.UpdateOrder(ctx, order); err != nil {
			return err
		}
		return s.refreshRecipeRating(ctx, order.RecipeID)
	})
	if err != nil {
		return nil, err
	}

	dispatch(ctx, s.events, s.log, models.OrderRatedEvent{OrderID: order.ID, RecipeID: order.RecipeID, Rating: rating})
	return order, nil
}

// refreshRecipeRating recomputes a recipe's rating from its rated orders.
// A recipe deleted after the order was placed is skipped.
func (s *OrderService) refreshRecipeRating(ctx context.Context, recipeID int64) error {
	recipe, err := s.store.GetRecipe(ctx, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	orders, err := s.store.ListOrders(ctx, repository.OrderFilter{RecipeID: recipeID})
	if err != nil {
		return err
	}
	recipe.Rating = stats.MeanOrderRating(orders).OrElse(recipe.Rating)
	return s.store.UpdateRecipe(ctx, recipe)
}

func (s *OrderService) getOrder(ctx context.Context, orderID int64) (*models.Order, error) {
	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}
