package service

import (
	"errors"

	"github.com/pageza/homechef/backend/internal/models"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrChefNotFound       = errors.New("chef not found")
	ErrClientNotFound     = errors.New("client not found")
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidInput       = errors.New("invalid input")
	ErrForbidden          = errors.New("forbidden")
	ErrReportsDisabled    = errors.New("report archive not configured")

	ErrInvalidTransition = models.ErrInvalidTransition
	ErrNotRateable       = models.ErrNotRateable
	ErrInvalidRating     = models.ErrInvalidRating
)
