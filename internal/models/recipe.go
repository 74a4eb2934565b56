package models

// Price band accepted for a recipe, in cents
const (
	MinPriceCents int64 = 100
	MaxPriceCents int64 = 100000
)

// MaxRating is the top of the rating scale shared by recipes and orders
const MaxRating = 5

// Recipe is a dish offered by a chef
type Recipe struct {
	ID              int64   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	ChefID          int64   `gorm:"not null;index" json:"chefId"`
	ChefName        string  `gorm:"size:100" json:"chefName"`
	Title           string  `gorm:"size:255;not null" json:"title"`
	Description     string  `gorm:"type:text" json:"description"`
	PriceCents      int64   `gorm:"not null" json:"priceCents"`
	Servings        int     `gorm:"not null" json:"servings"`
	CookTimeMinutes int     `gorm:"not null" json:"cookTime"`
	Rating          float64 `gorm:"not null;default:0" json:"rating"`
	OrdersCount     int     `gorm:"not null;default:0" json:"ordersCount"`
	CreatedOn       string  `gorm:"size:10;not null" json:"createdAt"`
}

// PriceInBand reports whether cents falls inside the accepted price band
func PriceInBand(cents int64) bool {
	return cents >= MinPriceCents && cents <= MaxPriceCents
}
