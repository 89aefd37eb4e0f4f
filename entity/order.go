package entity

import (
	"gorm.io/gorm"
)

// Orders are never deleted; they are an append-only audit trail.
type Order struct {
	gorm.Model
	CustomerID uint `json:"customerId"`
	Customer   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	DeliveryAddressID uint    `json:"deliveryAddressId"`
	DeliveryAddress   Address `json:"deliveryAddress"`

	Status OrderStatus `gorm:"not null" json:"status"`

	// TotalAmount is fixed at checkout regardless of later food price edits.
	TotalAmount    int64 `json:"totalAmount"`
	TotalItemCount int   `json:"totalItemCount"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
