package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	FoodID uint `json:"foodId"`
	Food   Food `json:"-"`

	Quantity int `json:"quantity"`
	// Snapshot at checkout time, never updated.
	UnitPrice int64 `json:"unitPrice"`
	LineTotal int64 `json:"lineTotal"`

	Customizations []string `gorm:"serializer:json" json:"customizations"`
}
