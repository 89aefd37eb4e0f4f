package entity

import (
	"gorm.io/gorm"
)

type IngredientCategory struct {
	gorm.Model
	Name string `gorm:"not null" json:"name"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Items []IngredientItem `gorm:"foreignKey:CategoryID" json:"-"`
}

type IngredientItem struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	InStock bool   `json:"inStock"`

	CategoryID uint               `json:"categoryId"`
	Category   IngredientCategory `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
