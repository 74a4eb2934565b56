package repository

import (
	"context"
	stderrors "errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/pageza/homechef/backend/internal/models"
)

// GormStore implements Store on top of any gorm dialector (sqlite, postgres)
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var _ Store = (*GormStore)(nil)

type gormTxKey struct{}

// conn returns the transaction bound to ctx, or the root handle
func (s *GormStore) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(gormTxKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return s.db.WithContext(ctx)
}

func (s *GormStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(gormTxKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, gormTxKey{}, tx))
	})
}

func notFound(err error, format string, args ...interface{}) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrapf(ErrNotFound, format, args...)
	}
	return errors.Wrapf(err, format, args...)
}

// nextID returns one past the largest id in the table behind model
func (s *GormStore) nextID(ctx context.Context, model interface{}) (int64, error) {
	var max int64
	if err := s.conn(ctx).Model(model).Select("COALESCE(MAX(id), 0)").Scan(&max).Error; err != nil {
		return 0, errors.Wrap(err, "next id")
	}
	return max + 1, nil
}

// Accounts

func (s *GormStore) CreateAccount(ctx context.Context, a *models.Account) error {
	return s.WithTransaction(ctx, func(ctx context.Context) error {
		var count int64
		if err := s.conn(ctx).Model(&models.Account{}).Where("LOWER(email) = LOWER(?)", a.Email).Count(&count).Error; err != nil {
			return errors.Wrap(err, "check email")
		}
		if count > 0 {
			return errors.Wrapf(ErrDuplicateEmail, "account %s", a.Email)
		}
		if a.ID == 0 {
			id, err := s.nextID(ctx, &models.Account{})
			if err != nil {
				return err
			}
			a.ID = id
		}
		return errors.Wrapf(s.conn(ctx).Create(a).Error, "create account %d", a.ID)
	})
}

func (s *GormStore) GetAccount(ctx context.Context, id int64) (*models.Account, error) {
	var a models.Account
	if err := s.conn(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "account %d", id)
	}
	return &a, nil
}

func (s *GormStore) FindAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	var a models.Account
	if err := s.conn(ctx).Where("LOWER(email) = LOWER(?)", email).First(&a).Error; err != nil {
		return nil, notFound(err, "account %s", email)
	}
	return &a, nil
}

func (s *GormStore) ListAccounts(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	if err := s.conn(ctx).Order("id").Find(&accounts).Error; err != nil {
		return nil, errors.Wrap(err, "list accounts")
	}
	return accounts, nil
}

// Recipes

func (s *GormStore) CreateRecipe(ctx context.Context, r *models.Recipe) error {
	return s.WithTransaction(ctx, func(ctx context.Context) error {
		if r.ID == 0 {
			id, err := s.nextID(ctx, &models.Recipe{})
			if err != nil {
				return err
			}
			r.ID = id
		}
		return errors.Wrapf(s.conn(ctx).Create(r).Error, "create recipe %d", r.ID)
	})
}

func (s *GormStore) GetRecipe(ctx context.Context, id int64) (*models.Recipe, error) {
	var r models.Recipe
	if err := s.conn(ctx).First(&r, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "recipe %d", id)
	}
	return &r, nil
}

func (s *GormStore) UpdateRecipe(ctx context.Context, r *models.Recipe) error {
	res := s.conn(ctx).Model(&models.Recipe{}).Where("id = ?", r.ID).Select("*").Updates(r)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "update recipe %d", r.ID)
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(ErrNotFound, "recipe %d", r.ID)
	}
	return nil
}

func (s *GormStore) DeleteRecipe(ctx context.Context, id int64) error {
	res := s.conn(ctx).Delete(&models.Recipe{}, "id = ?", id)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "delete recipe %d", id)
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(ErrNotFound, "recipe %d", id)
	}
	return nil
}

func (s *GormStore) ListRecipes(ctx context.Context, f RecipeFilter) ([]models.Recipe, error) {
	query := s.conn(ctx).Order("id")
	if f.ChefID != 0 {
		query = query.Where("chef_id = ?", f.ChefID)
	}
	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, errors.Wrap(err, "list recipes")
	}
	return recipes, nil
}

// Orders

func (s *GormStore) CreateOrder(ctx context.Context, o *models.Order) error {
	return s.WithTransaction(ctx, func(ctx context.Context) error {
		if o.ID == 0 {
			id, err := s.nextID(ctx, &models.Order{})
			if err != nil {
				return err
			}
			o.ID = id
		}
		return errors.Wrapf(s.conn(ctx).Create(o).Error, "create order %d", o.ID)
	})
}

func (s *GormStore) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	var o models.Order
	if err := s.conn(ctx).First(&o, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "order %d", id)
	}
	return &o, nil
}

func (s *GormStore) UpdateOrder(ctx context.Context, o *models.Order) error {
	res := s.conn(ctx).Model(&models.Order{}).Where("id = ?", o.ID).Select("*").Updates(o)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "update order %d", o.ID)
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(ErrNotFound, "order %d", o.ID)
	}
	return nil
}

func (s *GormStore) ListOrders(ctx context.Context, f OrderFilter) ([]models.Order, error) {
	query := s.conn(ctx).Order("id")
	if f.ClientID != 0 {
		query = query.Where("client_id = ?", f.ClientID)
	}
	if f.ChefID != 0 {
		query = query.Where("chef_id = ?", f.ChefID)
	}
	if f.RecipeID != 0 {
		query = query.Where("recipe_id = ?", f.RecipeID)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return orders, nil
}
