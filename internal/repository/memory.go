package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/pageza/homechef/backend/internal/models"
)

// MemoryStore keeps accounts, recipes and orders in maps guarded by one RWMutex.
// Reads return copies so callers never alias stored values.
type MemoryStore struct {
	mu sync.RWMutex

	accounts map[int64]models.Account
	recipes  map[int64]models.Recipe
	orders   map[int64]models.Order

	// high-water marks; ids are never reused after a delete
	lastAccountID int64
	lastRecipeID  int64
	lastOrderID   int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[int64]models.Account),
		recipes:  make(map[int64]models.Recipe),
		orders:   make(map[int64]models.Order),
	}
}

var _ Store = (*MemoryStore)(nil)

type txKey struct{}

func isTx(ctx context.Context) bool {
	b, ok := ctx.Value(txKey{}).(bool)
	return ok && b
}

func (m *MemoryStore) rlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RLock()
	}
}

func (m *MemoryStore) runlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RUnlock()
	}
}

func (m *MemoryStore) wlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Lock()
	}
}

func (m *MemoryStore) wunlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Unlock()
	}
}

// WithTransaction holds the write lock for the duration of fn and marks ctx
// so nested repository calls skip their own locking.
func (m *MemoryStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if isTx(ctx) {
		return fn(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(context.WithValue(ctx, txKey{}, true))
}

func assignID(id *int64, last *int64) {
	if *id == 0 {
		*last++
		*id = *last
		return
	}
	if *id > *last {
		*last = *id
	}
}

// Accounts

func (m *MemoryStore) CreateAccount(ctx context.Context, a *models.Account) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	for _, existing := range m.accounts {
		if strings.EqualFold(existing.Email, a.Email) {
			return errors.Wrapf(ErrDuplicateEmail, "account %s", a.Email)
		}
	}
	if _, taken := m.accounts[a.ID]; taken && a.ID != 0 {
		return errors.Errorf("account id %d already in use", a.ID)
	}
	assignID(&a.ID, &m.lastAccountID)
	m.accounts[a.ID] = *a
	return nil
}

func (m *MemoryStore) GetAccount(ctx context.Context, id int64) (*models.Account, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	a, ok := m.accounts[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "account %d", id)
	}
	return &a, nil
}

func (m *MemoryStore) FindAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	for _, a := range m.accounts {
		if strings.EqualFold(a.Email, email) {
			cp := a
			return &cp, nil
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "account %s", email)
}

func (m *MemoryStore) ListAccounts(ctx context.Context) ([]models.Account, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]models.Account, 0, len(m.accounts))
	for _, a := range m.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Recipes

func (m *MemoryStore) CreateRecipe(ctx context.Context, r *models.Recipe) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if _, taken := m.recipes[r.ID]; taken && r.ID != 0 {
		return errors.Errorf("recipe id %d already in use", r.ID)
	}
	assignID(&r.ID, &m.lastRecipeID)
	m.recipes[r.ID] = *r
	return nil
}

func (m *MemoryStore) GetRecipe(ctx context.Context, id int64) (*models.Recipe, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	r, ok := m.recipes[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "recipe %d", id)
	}
	return &r, nil
}

func (m *MemoryStore) UpdateRecipe(ctx context.Context, r *models.Recipe) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if _, ok := m.recipes[r.ID]; !ok {
		return errors.Wrapf(ErrNotFound, "recipe %d", r.ID)
	}
	m.recipes[r.ID] = *r
	return nil
}

func (m *MemoryStore) DeleteRecipe(ctx context.Context, id int64) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if _, ok := m.recipes[id]; !ok {
		return errors.Wrapf(ErrNotFound, "recipe %d", id)
	}
	delete(m.recipes, id)
	return nil
}

func (m *MemoryStore) ListRecipes(ctx context.Context, f RecipeFilter) ([]models.Recipe, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]models.Recipe, 0)
	for _, r := range m.recipes {
		if f.match(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Orders

func (m *MemoryStore) CreateOrder(ctx context.Context, o *models.Order) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if _, taken := m.orders[o.ID]; taken && o.ID != 0 {
		return errors.Errorf("order id %d already in use", o.ID)
	}
	assignID(&o.ID, &m.lastOrderID)
	m.orders[o.ID] = cloneOrder(*o)
	return nil
}

func (m *MemoryStore) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	o, ok := m.orders[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "order %d", id)
	}
	cp := cloneOrder(o)
	return &cp, nil
}

func (m *MemoryStore) UpdateOrder(ctx context.Context, o *models.Order) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if _, ok := m.orders[o.ID]; !ok {
		return errors.Wrapf(ErrNotFound, "order %d", o.ID)
	}
	m.orders[o.ID] = cloneOrder(*o)
	return nil
}

func (m *MemoryStore) ListOrders(ctx context.Context, f OrderFilter) ([]models.Order, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]models.Order, 0)
	for _, o := range m.orders {
		if f.match(o) {
			out = append(out, cloneOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// cloneOrder detaches the rating pointer from the stored value
func cloneOrder(o models.Order) models.Order {
	if o.Rating != nil {
		r := *o.Rating
		o.Rating = &r
	}
	return o
}
