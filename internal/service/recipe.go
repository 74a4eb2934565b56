package service

import (
	"context"
	"errors"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/pageza/homechef/backend/internal/models"
	"github.com/pageza/homechef/backend/internal/repository"
	"github.com/pageza/homechef/backend/internal/types"
)

// RecipeService handles catalog operations
type RecipeService struct {
	store   repository.Store
	latency Latency
	today   func() time.Time
}

// NewRecipeService creates a new RecipeService instance. today supplies the
// calendar day stamped on new recipes.
func NewRecipeService(store repository.Store, latency Latency, today func() time.Time) *RecipeService {
	return &RecipeService{store: store, latency: latency, today: today}
}

// ListRecipes returns the whole catalog
func (s *RecipeService) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	if err := s.latency.read(ctx); err != nil {
		return nil, err
	}
	return s.store.ListRecipes(ctx, repository.RecipeFilter{})
}

// ListRecipesByChef returns the recipes owned by chefID
func (s *RecipeService) ListRecipesByChef(ctx context.Context, chefID int64) ([]models.Recipe, error) {
	if err := s.latency.read(ctx); err != nil {
		return nil, err
	}
	return s.store.ListRecipes(ctx, repository.RecipeFilter{ChefID: chefID})
}

// CreateRecipe publishes a new recipe for chefID with no orders and no rating
func (s *RecipeService) CreateRecipe(ctx context.Context, chefID int64, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	if err := validateRecipe(req); err != nil {
		return nil, err
	}
	if err := s.latency.write(ctx); err != nil {
		return nil, err
	}

	var recipe *models.Recipe
	err := s.store.WithTransaction(ctx, func(ctx context.Context) error {
		chef, err := accountWithRole(ctx, s.store, chefID, models.RoleChef, ErrChefNotFound)
		if err != nil {
			return err
		}
		recipe = &models.Recipe{
			ChefID:          chef.ID,
			ChefName:        chef.Name,
			Title:           strings.TrimSpace(req.Title),
			Description:     strings.TrimSpace(req.Description),
			PriceCents:      req.PriceCents,
			Servings:        req.Servings,
			CookTimeMinutes: req.CookTime,
			CreatedOn:       models.DateOf(s.today()),
		}
		return s.store.CreateRecipe(ctx, recipe)
	})
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// DeleteRecipe removes exactly one recipe
func (s *RecipeService) DeleteRecipe(ctx context.Context, recipeID int64) error {
	if err := s.latency.write(ctx); err != nil {
		return err
	}
	if err := s.store.DeleteRecipe(ctx, recipeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}
	return nil
}

// DeleteChefRecipe removes a recipe on behalf of its owner
func (s *RecipeService) DeleteChefRecipe(ctx context.Context, chefID, recipeID int64) error {
	if err := s.latency.write(ctx); err != nil {
		return err
	}
	return s.store.WithTransaction(ctx, func(ctx context.Context) error {
		recipe, err := s.store.GetRecipe(ctx, recipeID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrRecipeNotFound
			}
			return err
		}
		if recipe.ChefID != chefID {
			return ErrForbidden
		}
		return s.store.DeleteRecipe(ctx, recipeID)
	})
}

func validateRecipe(req *types.CreateRecipeRequest) error {
	switch {
	case req == nil:
		return pkgerrors.Wrap(ErrInvalidInput, "recipe is required")
	case strings.TrimSpace(req.Title) == "":
		return pkgerrors.Wrap(ErrInvalidInput, "title is required")
	case !models.PriceInBand(req.PriceCents):
		return pkgerrors.Wrapf(ErrInvalidInput, "price must be between %d and %d cents", models.MinPriceCents, models.MaxPriceCents)
	case req.Servings < 1:
		return pkgerrors.Wrap(ErrInvalidInput, "servings must be at least 1")
	case req.CookTime < 1:
		return pkgerrors.Wrap(ErrInvalidInput, "cook time must be at least 1 minute")
	}
	return nil
}
