package repository

import (
	"errors"
	"fmt"

	"github.com/campo22/food-delivery-app/entity"
	"github.com/campo22/food-delivery-app/pkg/apperr"
	"gorm.io/gorm"
)

type CategoryRepository struct{ DB *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(tx *gorm.DB, c *entity.Category) error {
	return tx.Create(c).Error
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var c entity.Category
	err := r.DB.First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: category %d", apperr.ErrNotFound, id)
	}
	return &c, err
}

func (r *CategoryRepository) ListByRestaurant(restaurantID uint) ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Where("restaurant_id = ?", restaurantID).Order("id").Find(&out).Error
	return out, err
}
