package entity

import (
	"gorm.io/gorm"
)

// Favorite is a denormalized snapshot of a restaurant captured at
// add-time; it does not track later restaurant edits.
type Favorite struct {
	gorm.Model
	UserID       uint `gorm:"uniqueIndex:idx_fav_user_restaurant;not null" json:"userId"`
	RestaurantID uint `gorm:"uniqueIndex:idx_fav_user_restaurant;not null" json:"restaurantId"`

	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `gorm:"serializer:json" json:"images"`
}
