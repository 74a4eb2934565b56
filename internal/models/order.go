package models

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTransition = errors.New("order status transition not allowed")
	ErrNotRateable       = errors.New("only completed orders can be rated")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
)

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending: {OrderCompleted, OrderCancelled},
}

// ParseOrderStatus converts a wire value into an OrderStatus
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch st := OrderStatus(s); st {
	case OrderPending, OrderCompleted, OrderCancelled:
		return st, nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// CanTransitionTo reports whether the status may move to next
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is possible
func (s OrderStatus) Terminal() bool {
	return len(orderTransitions[s]) == 0
}

// Order links one client to one recipe and its owning chef
type Order struct {
	ID          int64       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	ClientID    int64       `gorm:"not null;index" json:"clientId"`
	ClientName  string      `gorm:"size:100" json:"clientName"`
	ChefID      int64       `gorm:"not null;index" json:"chefId"`
	ChefName    string      `gorm:"size:100" json:"chefName"`
	RecipeID    int64       `gorm:"not null;index" json:"recipeId"`
	RecipeName  string      `gorm:"size:255" json:"recipeName"`
	Quantity    int         `gorm:"not null" json:"quantity"`
	AmountCents int64       `gorm:"not null" json:"amountCents"`
	Status      OrderStatus `gorm:"size:16;not null;index" json:"status"`
	PickupDate  string      `gorm:"size:10" json:"pickupDate"`
	PickupTime  string      `gorm:"size:5" json:"pickupTime"`
	Rating      *int        `json:"rating,omitempty"`
	CreatedOn   string      `gorm:"size:10;not null;index" json:"createdAt"`
}

// Transition moves the order to next when the transition table allows it
func (o *Order) Transition(next OrderStatus) error {
	if !o.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, next)
	}
	o.Status = next
	return nil
}

// Rate records the client's rating of a completed order
func (o *Order) Rate(rating int) error {
	if o.Status != OrderCompleted {
		return ErrNotRateable
	}
	if rating < 1 || rating > MaxRating {
		return ErrInvalidRating
	}
	o.Rating = &rating
	return nil
}

// DateLayout is the calendar-day format used for every stored date
const DateLayout = "2006-01-02"

// DateOf formats t as a calendar day in UTC
func DateOf(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate parses a calendar day produced by DateOf
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
