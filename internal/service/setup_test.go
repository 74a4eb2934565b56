package service_test

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pageza/homechef/backend/internal/models"
	"github.com/pageza/homechef/backend/internal/repository"
	"github.com/pageza/homechef/backend/internal/service"
	"github.com/pageza/homechef/backend/internal/testhelpers"
)

var fixedToday = time.Date(2026, 2, 6, 0, 0, 0, 0, time.UTC)

func today() time.Time { return fixedToday }

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type recordingDispatcher struct {
	mu     sync.Mutex
	events []models.Event
}

func (d *recordingDispatcher) Dispatch(_ context.Context, event models.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

type services struct {
	store     *repository.MemoryStore
	events    *recordingDispatcher
	auth      *service.AuthService
	accounts  *service.AccountService
	recipes   *service.RecipeService
	orders    *service.OrderService
	favorites *service.FavoriteService
	dashboard *service.DashboardService
}

func setup(t *testing.T) *services {
	t.Helper()
	store := testhelpers.NewFixtureStore(t)
	events := &recordingDispatcher{}
	latency := service.Latency{}

	s := &services{
		store:     store,
		events:    events,
		auth:      service.NewAuthService(store, "test-secret", time.Hour, latency),
		accounts:  service.NewAccountService(store, latency),
		recipes:   service.NewRecipeService(store, latency, today),
		orders:    service.NewOrderService(store, latency, today, events, quietLogger()),
		favorites: service.NewFavoriteService(store, latency),
	}
	s.dashboard = service.NewDashboardService(s.accounts, s.recipes, s.orders, s.favorites, today)
	return s
}
