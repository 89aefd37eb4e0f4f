package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CuisineType string   `json:"cuisineType"`
	Address     string   `json:"address"`
	Images      []string `gorm:"serializer:json" json:"images"`
	Open        bool     `json:"open"`

	// OwnerID never changes after creation.
	OwnerID uint `gorm:"uniqueIndex;not null" json:"ownerId"`

	Categories           []Category           `json:"-"`
	Foods                []Food               `json:"-"`
	Ingredients          []IngredientItem     `json:"-"`
	IngredientCategories []IngredientCategory `json:"-"`
	Orders               []Order              `json:"-"`
}
