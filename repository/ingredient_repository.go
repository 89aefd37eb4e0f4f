package repository

import (
	"errors"
	"fmt"

	"github.com/campo22/food-delivery-app/entity"
	"github.com/campo22/food-delivery-app/pkg/apperr"
	"gorm.io/gorm"
)

type IngredientRepository struct{ DB *gorm.DB }

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{DB: db}
}

func (r *IngredientRepository) CreateCategory(tx *gorm.DB, c *entity.IngredientCategory) error {
	return tx.Create(c).Error
}

func (r *IngredientRepository) FindCategoryByID(id uint) (*entity.IngredientCategory, error) {
	var c entity.IngredientCategory
	err := r.DB.First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: ingredient category %d", apperr.ErrNotFound, id)
	}
	return &c, err
}

func (r *IngredientRepository) ListCategoriesByRestaurant(restaurantID uint) ([]entity.IngredientCategory, error) {
	var out []entity.IngredientCategory
	err := r.DB.Where("restaurant_id = ?", restaurantID).Order("id").Find(&out).Error
	return out, err
}

func (r *IngredientRepository) CreateItem(tx *gorm.DB, i *entity.IngredientItem) error {
	return tx.Create(i).Error
}

func (r *IngredientRepository) SaveItem(tx *gorm.DB, i *entity.IngredientItem) error {
	return tx.Save(i).Error
}

func (r *IngredientRepository) FindItemByID(id uint) (*entity.IngredientItem, error) {
	var i entity.IngredientItem
	err := r.DB.First(&i, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: ingredient %d", apperr.ErrNotFound, id)
	}
	return &i, err
}

func (r *IngredientRepository) ListItemsByRestaurant(restaurantID uint) ([]entity.IngredientItem, error) {
	var out []entity.IngredientItem
	err := r.DB.Where("restaurant_id = ?", restaurantID).Order("id").Find(&out).Error
	return out, err
}
