package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/pageza/homechef/backend/internal/models"
)

// LogDispatcher writes every domain event to the log
type LogDispatcher struct {
	log logrus.FieldLogger
}

func NewLogDispatcher(log logrus.FieldLogger) *LogDispatcher {
	return &LogDispatcher{log: log}
}

func (d *LogDispatcher) Dispatch(_ context.Context, event models.Event) error {
	entry := d.log.WithField("event", event.Type())
	switch e := event.(type) {
	case models.OrderCreatedEvent:
		entry = entry.WithFields(logrus.Fields{
			"order_id":     e.OrderID,
			"client_id":    e.ClientID,
			"chef_id":      e.ChefID,
			"recipe_id":    e.RecipeID,
			"amount_cents": e.AmountCents,
		})
	case models.OrderCompletedEvent:
		entry = entry.WithFields(logrus.Fields{"order_id": e.OrderID, "chef_id": e.ChefID})
	case models.OrderCancelledEvent:
		entry = entry.WithFields(logrus.Fields{"order_id": e.OrderID, "chef_id": e.ChefID})
	case models.OrderRatedEvent:
		entry = entry.WithFields(logrus.Fields{"order_id": e.OrderID, "recipe_id": e.RecipeID, "rating": e.Rating})
	}
	entry.Info("order event")
	return nil
}

// dispatch hands event to the dispatcher; failures are logged, never returned,
// because the state change has already committed
func dispatch(ctx context.Context, d EventDispatcher, log logrus.FieldLogger, event models.Event) {
	if d == nil {
		return
	}
	if err := d.Dispatch(ctx, event); err != nil {
		log.WithError(err).WithField("event", event.Type()).Error("dispatch event")
	}
}
