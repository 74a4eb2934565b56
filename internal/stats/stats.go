// Package stats computes dashboard aggregates from a read-only snapshot of
// the directory, catalog and ledger. Every function here is pure.
package stats

import (
	"math"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/pageza/homechef/backend/internal/models"
)

// Days covered by the daily series
const windowDays = 7

// Snapshot is the input of Compute
type Snapshot struct {
	Accounts []models.Account
	Recipes  []models.Recipe
	Orders   []models.Order
}

// DayCount is one point of the orders-per-day series
type DayCount struct {
	Day   string `json:"day"`
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DayAmount is one point of a money-per-day series
type DayAmount struct {
	Day         string `json:"day"`
	Date        string `json:"date"`
	AmountCents int64  `json:"amountCents"`
}

// ChefRevenue is the revenue attributed to one chef
type ChefRevenue struct {
	ChefID       int64  `json:"chefId"`
	Name         string `json:"name"`
	RevenueCents int64  `json:"revenueCents"`
}

// AdminStats is the platform-wide summary shown to admins
type AdminStats struct {
	TotalUsers        int           `json:"totalUsers"`
	TotalChefs        int           `json:"totalChefs"`
	TotalClients      int           `json:"totalClients"`
	TotalOrders       int           `json:"totalOrders"`
	CompletedOrders   int           `json:"completedOrders"`
	TotalRevenueCents int64         `json:"totalRevenueCents"`
	AvgRating         float64       `json:"avgRating"`
	OrdersPerDay      []DayCount    `json:"ordersPerDay"`
	RevenueByChef     []ChefRevenue `json:"revenueByChef"`
}

// Earnings is the summary shown to a single chef
type Earnings struct {
	CompletedOrders    int         `json:"completedOrders"`
	TotalEarningsCents int64       `json:"totalEarningsCents"`
	AvgPerOrderCents   int64       `json:"avgPerOrderCents"`
	AvgRating          float64     `json:"avgRating"`
	ThisMonthCents     int64       `json:"thisMonthCents"`
	ThisYearCents      int64       `json:"thisYearCents"`
	Last7DaysCents     int64       `json:"last7DaysCents"`
	EarningsByDay      []DayAmount `json:"earningsByDay"`
}

// Summary counts a client's orders by status
type Summary struct {
	TotalOrders     int   `json:"totalOrders"`
	Pending         int   `json:"pending"`
	Completed       int   `json:"completed"`
	Cancelled       int   `json:"cancelled"`
	TotalSpentCents int64 `json:"totalSpentCents"`
}

// Compute builds the admin summary for the calendar day today.
// Revenue counts every order regardless of status.
func Compute(s Snapshot, today time.Time) AdminStats {
	byRole := lo.CountValuesBy(s.Accounts, func(a models.Account) models.Role { return a.Role })
	stats := AdminStats{
		TotalUsers:        len(s.Accounts),
		TotalChefs:        byRole[models.RoleChef],
		TotalClients:      byRole[models.RoleClient],
		TotalOrders:       len(s.Orders),
		CompletedOrders:   lo.CountBy(s.Orders, isCompleted),
		TotalRevenueCents: sumAmount(s.Orders),
		AvgRating:         round(meanRating(s.Recipes).OrElse(0), 2),
	}

	perDay := lo.CountValuesBy(s.Orders, func(o models.Order) string { return o.CreatedOn })
	for _, day := range lastDays(today) {
		stats.OrdersPerDay = append(stats.OrdersPerDay, DayCount{
			Day:   day.Format("02"),
			Date:  models.DateOf(day),
			Count: perDay[models.DateOf(day)],
		})
	}

	byChef := lo.GroupBy(s.Orders, func(o models.Order) int64 { return o.ChefID })
	stats.RevenueByChef = lo.FilterMap(s.Accounts, func(a models.Account, _ int) (ChefRevenue, bool) {
		if a.Role != models.RoleChef {
			return ChefRevenue{}, false
		}
		return ChefRevenue{ChefID: a.ID, Name: a.Name, RevenueCents: sumAmount(byChef[a.ID])}, true
	})
	return stats
}

// ChefEarnings summarizes completed orders and recipe ratings for one chef.
// Callers pass only that chef's orders and recipes.
func ChefEarnings(orders []models.Order, recipes []models.Recipe, today time.Time) Earnings {
	completed := lo.Filter(orders, func(o models.Order, _ int) bool { return isCompleted(o) })
	today = midnight(today)

	e := Earnings{
		CompletedOrders:    len(completed),
		TotalEarningsCents: sumAmount(completed),
		AvgRating:          round(mean(lo.Map(recipes, func(r models.Recipe, _ int) float64 { return r.Rating })), 1),
	}
	if e.CompletedOrders > 0 {
		e.AvgPerOrderCents = int64(math.Round(float64(e.TotalEarningsCents) / float64(e.CompletedOrders)))
	}

	perDay := map[string]int64{}
	for _, o := range completed {
		created, err := models.ParseDate(o.CreatedOn)
		if err != nil {
			continue
		}
		perDay[o.CreatedOn] += o.AmountCents
		if created.Year() == today.Year() {
			e.ThisYearCents += o.AmountCents
			if created.Month() == today.Month() {
				e.ThisMonthCents += o.AmountCents
			}
		}
		if daysAgo := int(today.Sub(created).Hours() / 24); daysAgo >= 0 && daysAgo <= windowDays {
			e.Last7DaysCents += o.AmountCents
		}
	}

	for _, day := range lastDays(today) {
		e.EarningsByDay = append(e.EarningsByDay, DayAmount{
			Day:         day.Format("02"),
			Date:        models.DateOf(day),
			AmountCents: perDay[models.DateOf(day)],
		})
	}
	return e
}

// ClientSummary counts one client's orders. Spending covers completed orders only.
func ClientSummary(orders []models.Order) Summary {
	byStatus := lo.CountValuesBy(orders, func(o models.Order) models.OrderStatus { return o.Status })
	return Summary{
		TotalOrders:     len(orders),
		Pending:         byStatus[models.OrderPending],
		Completed:       byStatus[models.OrderCompleted],
		Cancelled:       byStatus[models.OrderCancelled],
		TotalSpentCents: sumAmount(lo.Filter(orders, func(o models.Order, _ int) bool { return isCompleted(o) })),
	}
}

// MeanOrderRating averages the ratings of rated orders, rounded to one decimal.
// It is None when no order carries a rating.
func MeanOrderRating(orders []models.Order) mo.Option[float64] {
	rated := lo.FilterMap(orders, func(o models.Order, _ int) (float64, bool) {
		if o.Rating == nil {
			return 0, false
		}
		return float64(*o.Rating), true
	})
	if len(rated) == 0 {
		return mo.None[float64]()
	}
	return mo.Some(round(mean(rated), 1))
}

// meanRating averages recipes that have been rated at least once
func meanRating(recipes []models.Recipe) mo.Option[float64] {
	rated := lo.FilterMap(recipes, func(r models.Recipe, _ int) (float64, bool) {
		return r.Rating, r.Rating > 0
	})
	if len(rated) == 0 {
		return mo.None[float64]()
	}
	return mo.Some(mean(rated))
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return lo.Sum(xs) / float64(len(xs))
}

func isCompleted(o models.Order) bool {
	return o.Status == models.OrderCompleted
}

func sumAmount(orders []models.Order) int64 {
	return lo.SumBy(orders, func(o models.Order) int64 { return o.AmountCents })
}

// lastDays returns the windowDays calendar days ending at today, oldest first
func lastDays(today time.Time) []time.Time {
	today = midnight(today)
	days := make([]time.Time, windowDays)
	for i := range days {
		days[i] = today.AddDate(0, 0, i-(windowDays-1))
	}
	return days
}

func midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
