package seed

import (
	"context"
	_ "embed"
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/pageza/homechef/backend/internal/models"
	"github.com/pageza/homechef/backend/internal/repository"
)

//go:embed templates.yaml
var templatesYAML []byte

type recipeTemplate struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	PriceCents  int64  `yaml:"price_cents"`
}

type templates struct {
	Admins []struct {
		Name  string `yaml:"name"`
		Email string `yaml:"email"`
	} `yaml:"admins"`
	Chefs     []string          `yaml:"chefs"`
	Clients   int               `yaml:"clients"`
	Passwords map[string]string `yaml:"passwords"`
	Recipes   []recipeTemplate  `yaml:"recipes"`
}

func loadTemplates() (*templates, error) {
	var t templates
	if err := yaml.Unmarshal(templatesYAML, &t); err != nil {
		return nil, errors.Wrap(err, "parse seed templates")
	}
	if len(t.Chefs) == 0 || len(t.Recipes) == 0 {
		return nil, errors.New("seed templates need at least one chef and one recipe")
	}
	return &t, nil
}

// order statuses are drawn from this bag, so three in five orders are completed
var statusBag = []models.OrderStatus{
	models.OrderCompleted,
	models.OrderCompleted,
	models.OrderCompleted,
	models.OrderPending,
	models.OrderCancelled,
}

// Options controls a generation run
type Options struct {
	Today time.Time
	Rand  *rand.Rand
}

// Dataset is one generated directory, catalog and ledger
type Dataset struct {
	Accounts []models.Account
	Recipes  []models.Recipe
	Orders   []models.Order
}

// Counts summarizes a dataset by entity and role
type Counts struct {
	Admins  int `json:"admins"`
	Chefs   int `json:"chefs"`
	Clients int `json:"clients"`
	Recipes int `json:"recipes"`
	Orders  int `json:"orders"`
}

func (d *Dataset) Counts() Counts {
	byRole := lo.CountValuesBy(d.Accounts, func(a models.Account) models.Role { return a.Role })
	return Counts{
		Admins:  byRole[models.RoleAdmin],
		Chefs:   byRole[models.RoleChef],
		Clients: byRole[models.RoleClient],
		Recipes: len(d.Recipes),
		Orders:  len(d.Orders),
	}
}

// Generate builds the mock dataset. The same Rand seed and Today always
// produce the same dataset.
func Generate(opts Options) (*Dataset, error) {
	if opts.Rand == nil {
		return nil, errors.New("seed: Rand is required")
	}
	tpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	rng := opts.Rand
	today := opts.Today.UTC()
	ds := &Dataset{}

	var id int64
	for _, admin := range tpl.Admins {
		id++
		ds.Accounts = append(ds.Accounts, models.Account{
			ID: id, Name: admin.Name, Email: admin.Email, Password: tpl.Passwords["admin"], Role: models.RoleAdmin,
		})
	}

	chefs := make([]models.Account, 0, len(tpl.Chefs))
	for i, name := range tpl.Chefs {
		id++
		chef := models.Account{
			ID:       id,
			Name:     name,
			Email:    fmt.Sprintf("chef%d@homechef.com", i+1),
			Password: tpl.Passwords["chef"],
			Role:     models.RoleChef,
		}
		chefs = append(chefs, chef)
		ds.Accounts = append(ds.Accounts, chef)
	}

	clients := make([]models.Account, 0, tpl.Clients)
	for i := 0; i < tpl.Clients; i++ {
		id++
		client := models.Account{
			ID:       id,
			Name:     fmt.Sprintf("Client %d", i+1),
			Email:    fmt.Sprintf("client%d@homechef.com", i+1),
			Password: tpl.Passwords["client"],
			Role:     models.RoleClient,
		}
		clients = append(clients, client)
		ds.Accounts = append(ds.Accounts, client)
	}

	var recipeID int64
	for _, chef := range chefs {
		for _, t := range tpl.Recipes {
			recipeID++
			ds.Recipes = append(ds.Recipes, models.Recipe{
				ID:              recipeID,
				ChefID:          chef.ID,
				ChefName:        chef.Name,
				Title:           t.Title + " - " + chef.Name,
				Description:     t.Description,
				PriceCents:      t.PriceCents,
				Servings:        rng.Intn(3) + 2,
				CookTimeMinutes: rng.Intn(30) + 15,
				Rating:          float64(rng.Intn(models.MaxRating) + 1),
				OrdersCount:     rng.Intn(50) + 5,
				CreatedOn:       models.DateOf(today.AddDate(0, 0, -rng.Intn(30))),
			})
		}
	}

	var orderID int64
	for _, client := range clients {
		n := rng.Intn(5) + 1
		for i := 0; i < n; i++ {
			recipe := ds.Recipes[rng.Intn(len(ds.Recipes))]
			quantity := rng.Intn(3) + 1
			hour := rng.Intn(15) + 9
			minute := rng.Intn(60)
			created := today.AddDate(0, 0, -rng.Intn(30))
			pickup := today.AddDate(0, 0, rng.Intn(7))
			status := statusBag[rng.Intn(len(statusBag))]

			orderID++
			order := models.Order{
				ID:          orderID,
				ClientID:    client.ID,
				ClientName:  client.Name,
				ChefID:      recipe.ChefID,
				ChefName:    recipe.ChefName,
				RecipeID:    recipe.ID,
				RecipeName:  recipe.Title,
				Quantity:    quantity,
				AmountCents: recipe.PriceCents * int64(quantity),
				Status:      status,
				PickupDate:  models.DateOf(pickup),
				PickupTime:  fmt.Sprintf("%02d:%02d", hour, minute),
				CreatedOn:   models.DateOf(created),
			}
			if status == models.OrderCompleted {
				rating := rng.Intn(models.MaxRating) + 1
				order.Rating = &rating
			}
			ds.Orders = append(ds.Orders, order)
		}
	}

	return ds, nil
}

// Load writes ds through the repository in one transaction
func Load(ctx context.Context, store repository.Store, ds *Dataset) error {
	return store.WithTransaction(ctx, func(ctx context.Context) error {
		for i := range ds.Accounts {
			a := ds.Accounts[i]
			if err := store.CreateAccount(ctx, &a); err != nil {
				return errors.Wrapf(err, "seed account %s", a.Email)
			}
		}
		for i := range ds.Recipes {
			r := ds.Recipes[i]
			if err := store.CreateRecipe(ctx, &r); err != nil {
				return errors.Wrapf(err, "seed recipe %d", r.ID)
			}
		}
		for i := range ds.Orders {
			o := ds.Orders[i]
			if err := store.CreateOrder(ctx, &o); err != nil {
				return errors.Wrapf(err, "seed order %d", o.ID)
			}
		}
		return nil
	})
}
