package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/pageza/homechef/backend/internal/models"
	"github.com/pageza/homechef/backend/internal/repository"
)

// FavoriteService keeps each client's favorite recipes in memory
type FavoriteService struct {
	recipes repository.RecipeRepository
	latency Latency

	mu        sync.RWMutex
	favorites map[int64]map[int64]struct{}
}

func NewFavoriteService(recipes repository.RecipeRepository, latency Latency) *FavoriteService {
	return &FavoriteService{
		recipes:   recipes,
		latency:   latency,
		favorites: make(map[int64]map[int64]struct{}),
	}
}

// Toggle adds recipeID to the client's favorites, or removes it if present.
// It reports whether the recipe is a favorite afterwards.
func (s *FavoriteService) Toggle(ctx context.Context, clientID, recipeID int64) (bool, error) {
	if err := s.latency.write(ctx); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.favorites[clientID]
	if _, ok := set[recipeID]; ok {
		delete(set, recipeID)
		return false, nil
	}

	if _, err := s.recipes.GetRecipe(ctx, recipeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrRecipeNotFound
		}
		return false, err
	}
	if set == nil {
		set = make(map[int64]struct{})
		s.favorites[clientID] = set
	}
	set[recipeID] = struct{}{}
	return true, nil
}

// IDs returns the client's favorite recipe ids in ascending order
func (s *FavoriteService) IDs(clientID int64) []int64 {
	s.mu.RLock()
	ids := lo.Keys(s.favorites[clientID])
	s.mu.RUnlock()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// List returns the client's favorite recipes that are still in the catalog
func (s *FavoriteService) List(ctx context.Context, clientID int64) ([]models.Recipe, error) {
	if err := s.latency.read(ctx); err != nil {
		return nil, err
	}
	ids := s.IDs(clientID)
	if len(ids) == 0 {
		return []models.Recipe{}, nil
	}
	all, err := s.recipes.ListRecipes(ctx, repository.RecipeFilter{})
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(r models.Recipe, _ int) bool { return lo.Contains(ids, r.ID) }), nil
}
