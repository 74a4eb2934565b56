package types

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/pageza/homechef/backend/internal/models"
)

// TokenClaims represents the claims in a session token
type TokenClaims struct {
	jwt.RegisteredClaims
	AccountID int64       `json:"account_id"`
	Name      string      `json:"name"`
	Role      models.Role `json:"role"`
}
