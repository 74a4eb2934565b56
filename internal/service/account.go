package service

import (
	"context"
	"errors"

	"github.com/samber/lo"

	"github.com/pageza/homechef/backend/internal/models"
	"github.com/pageza/homechef/backend/internal/repository"
)

// AccountService exposes the user directory with passwords stripped
type AccountService struct {
	accounts repository.AccountRepository
	latency  Latency
}

func NewAccountService(accounts repository.AccountRepository, latency Latency) *AccountService {
	return &AccountService{accounts: accounts, latency: latency}
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	if err := s.latency.read(ctx); err != nil {
		return nil, err
	}
	accounts, err := s.accounts.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(accounts, func(a models.Account, _ int) models.Account { return a.Public() }), nil
}

func (s *AccountService) GetAccount(ctx context.Context, id int64) (*models.Account, error) {
	if err := s.latency.read(ctx); err != nil {
		return nil, err
	}
	account, err := s.accounts.GetAccount(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	public := account.Public()
	return &public, nil
}

// accountWithRole loads id and checks it carries role. A missing account or a
// role mismatch both yield notFound.
func accountWithRole(ctx context.Context, accounts repository.AccountRepository, id int64, role models.Role, notFound error) (*models.Account, error) {
	account, err := accounts.GetAccount(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound
		}
		return nil, err
	}
	if account.Role != role {
		return nil, notFound
	}
	return account, nil
}
