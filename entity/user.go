package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	FullName string `json:"fullName"`
	Role     Role   `gorm:"not null;default:CUSTOMER" json:"role"`

	// Relations, preloaded only when needed.
	RestaurantOwned *Restaurant `gorm:"foreignKey:OwnerID" json:"-"`
	Orders          []Order     `gorm:"foreignKey:CustomerID" json:"-"`
	Cart            *Cart       `gorm:"foreignKey:CustomerID" json:"-"`
	Addresses       []Address   `gorm:"foreignKey:UserID" json:"-"`
	Favorites       []Favorite  `gorm:"foreignKey:UserID" json:"-"`
}
