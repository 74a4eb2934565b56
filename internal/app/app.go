package app

import (
	"context"
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pageza/homechef/backend/config"
	"github.com/pageza/homechef/backend/internal/api"
	"github.com/pageza/homechef/backend/internal/database"
	"github.com/pageza/homechef/backend/internal/middleware"
	"github.com/pageza/homechef/backend/internal/repository"
	"github.com/pageza/homechef/backend/internal/router"
	"github.com/pageza/homechef/backend/internal/seed"
	"github.com/pageza/homechef/backend/internal/service"
)

// App holds the wired services and the resources they depend on
type App struct {
	Store    repository.Store
	Services api.Services
	Router   *gin.Engine
	Seeded   *seed.Counts

	// Report is the concrete report service, kept for Render
	Report *service.ReportService

	db    *gorm.DB
	redis *redis.Client
	log   *logrus.Logger
}

// Build opens the configured store, seeds it when empty and wires the HTTP surface
func Build(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*App, error) {
	a := &App{log: log}
	today := cfg.ReferenceDate()
	todayFn := func() time.Time { return today }

	if err := a.openStore(cfg); err != nil {
		return nil, err
	}

	counts, err := a.seedIfEmpty(ctx, cfg.Seed, today)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Seeded = counts

	if a.redis, err = database.NewRedisClient(cfg, log); err != nil {
		a.Close()
		return nil, err
	}

	latency := service.Latency{Read: cfg.ReadLatency, Write: cfg.WriteLatency}
	accounts := service.NewAccountService(a.Store, latency)
	recipes := service.NewRecipeService(a.Store, latency, todayFn)
	orders := service.NewOrderService(a.Store, latency, todayFn, service.NewLogDispatcher(log), log)
	favorites := service.NewFavoriteService(a.Store, latency)
	dashboard := service.NewDashboardService(accounts, recipes, orders, favorites, todayFn)

	var reportStore service.ReportStore
	if cfg.ReportBucket != "" {
		s3cfg, err := config.NewS3Config(ctx, cfg.ReportBucket, cfg.AWSRegion)
		if err != nil {
			a.Close()
			return nil, pkgerrors.Wrap(err, "configure report bucket")
		}
		reportStore = s3cfg
	}
	a.Report = service.NewReportService(dashboard, reportStore, todayFn, log)

	a.Services = api.Services{
		Auth:      service.NewAuthService(a.Store, cfg.JWTSecret, cfg.TokenTTL, latency),
		Accounts:  accounts,
		Recipes:   recipes,
		Orders:    orders,
		Dashboard: dashboard,
		Favorites: favorites,
		Reports:   a.Report,
	}

	var limits api.RateLimiters
	if a.redis != nil {
		limits.RecipeCreation = middleware.NewRecipeCreationRateLimiter(a.redis, log)
		limits.OrderCreation = middleware.NewOrderCreationRateLimiter(a.redis, log)
	}

	a.Router = router.SetupRouter(a.Services, limits, a.healthChecks(), cfg.CORSOrigins, log)
	return a, nil
}

func (a *App) openStore(cfg *config.Config) error {
	if cfg.StoreDriver == config.StoreMemory {
		a.Store = repository.NewMemoryStore()
		return nil
	}

	db, err := database.Open(cfg, a.log)
	if err != nil {
		return err
	}
	a.db = db
	if err := database.Migrate(db); err != nil {
		a.Close()
		return pkgerrors.Wrap(err, "migrate")
	}
	a.Store = repository.NewGormStore(db)
	return nil
}

// seedIfEmpty loads the mock dataset unless the store already holds accounts.
// It returns nil counts when nothing was loaded.
func (a *App) seedIfEmpty(ctx context.Context, seedValue int64, today time.Time) (*seed.Counts, error) {
	existing, err := a.Store.ListAccounts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "inspect store")
	}
	if len(existing) > 0 {
		a.log.WithField("accounts", len(existing)).Info("store already populated, skipping seed")
		return nil, nil
	}

	ds, err := seed.Generate(seed.Options{Today: today, Rand: rand.New(rand.NewSource(seedValue))})
	if err != nil {
		return nil, err
	}
	if err := seed.Load(ctx, a.Store, ds); err != nil {
		return nil, err
	}

	counts := ds.Counts()
	a.log.WithFields(logrus.Fields{
		"seed":    seedValue,
		"chefs":   counts.Chefs,
		"clients": counts.Clients,
		"recipes": counts.Recipes,
		"orders":  counts.Orders,
	}).Info("seeded store")
	return &counts, nil
}

func (a *App) healthChecks() map[string]api.HealthChecker {
	checks := map[string]api.HealthChecker{}
	if a.db != nil {
		db := a.db
		checks["database"] = func(ctx context.Context) error { return database.HealthCheck(ctx, db) }
	}
	if a.redis != nil {
		rdb := a.redis
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	return checks
}

// Close releases the database and redis connections
func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.WithError(err).Warn("close redis")
		}
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.log.WithError(err).Warn("close database")
			}
		}
	}
}
