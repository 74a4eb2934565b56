package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pageza/homechef/backend/internal/models"
	"github.com/pageza/homechef/backend/internal/repository"
	"github.com/pageza/homechef/backend/internal/types"
)

// AuthService checks plaintext credentials against the user directory and
// hands out a signed session token naming the account and its role.
type AuthService struct {
	accounts  repository.AccountRepository
	jwtSecret string
	tokenTTL  time.Duration
	latency   Latency
}

func NewAuthService(accounts repository.AccountRepository, jwtSecret string, tokenTTL time.Duration, latency Latency) *AuthService {
	return &AuthService{
		accounts:  accounts,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		latency:   latency,
	}
}

// Login returns the account without its password and a session token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Account, string, error) {
	if err := s.latency.write(ctx); err != nil {
		return nil, "", err
	}

	account, err := s.accounts.FindAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if account.Password != password {
		return nil, "", ErrInvalidCredentials
	}

	public := account.Public()
	token, err := s.GenerateToken(&public)
	if err != nil {
		return nil, "", err
	}
	return &public, token, nil
}

// GenerateToken signs a session token for account
func (s *AuthService) GenerateToken(account *models.Account) (string, error) {
	now := time.Now()
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(account.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
		AccountID: account.ID,
		Name:      account.Name,
		Role:      account.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses a session token and returns its claims
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || !claims.Role.Valid() || claims.AccountID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
