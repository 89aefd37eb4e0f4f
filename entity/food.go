package entity

import (
	"gorm.io/gorm"
)

type Food struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	// Price in minor currency units.
	Price      int64 `gorm:"not null" json:"price"`
	Available  bool  `json:"available"`
	Vegetarian bool  `json:"vegetarian"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	Ingredients []IngredientItem `gorm:"many2many:food_ingredients;" json:"-"`
}
