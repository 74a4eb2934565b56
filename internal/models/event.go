package models

// Event is a domain event raised by an order state change
type Event interface {
	Type() string
}

type OrderCreatedEvent struct {
	OrderID     int64
	ClientID    int64
	ChefID      int64
	RecipeID    int64
	AmountCents int64
}

func (e OrderCreatedEvent) Type() string { return "OrderCreated" }

type OrderCompletedEvent struct {
	OrderID int64
	ChefID  int64
}

func (e OrderCompletedEvent) Type() string { return "OrderCompleted" }

type OrderCancelledEvent struct {
	OrderID int64
	ChefID  int64
}

func (e OrderCancelledEvent) Type() string { return "OrderCancelled" }

type OrderRatedEvent struct {
	OrderID  int64
	RecipeID int64
	Rating   int
}

func (e OrderRatedEvent) Type() string { return "OrderRated" }
