package entity

import (
	"gorm.io/gorm"
)

type Cart struct {
	gorm.Model
	// One cart per customer, created at signup.
	CustomerID uint  `gorm:"uniqueIndex;not null" json:"customerId"`
	Total      int64 `json:"total"`
	// Optimistic lock counter; bumped on every guarded write.
	Version uint `json:"-"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
