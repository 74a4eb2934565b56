package models

// Role tags an account with the dashboard it uses
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleChef   Role = "chef"
	RoleClient Role = "client"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleChef, RoleClient:
		return true
	}
	return false
}

// Account is a user of the marketplace
type Account struct {
	ID       int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
	Role     Role   `gorm:"size:16;not null;index" json:"role"`
}

// Public returns a copy of the account without its password
func (a Account) Public() Account {
	a.Password = ""
	return a
}
