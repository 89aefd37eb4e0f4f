package repository

import (
	"errors"
	"fmt"

	"github.com/campo22/food-delivery-app/entity"
	"github.com/campo22/food-delivery-app/pkg/apperr"
	"gorm.io/gorm"
)

type FoodRepository struct{ DB *gorm.DB }

func NewFoodRepository(db *gorm.DB) *FoodRepository { return &FoodRepository{DB: db} }

func (r *FoodRepository) Create(tx *gorm.DB, f *entity.Food) error {
	return tx.Create(f).Error
}

func (r *FoodRepository) Save(tx *gorm.DB, f *entity.Food) error {
	return tx.Save(f).Error
}

func (r *FoodRepository) Delete(tx *gorm.DB, id uint) error {
	return tx.Delete(&entity.Food{}, id).Error
}

func (r *FoodRepository) FindByID(id uint) (*entity.Food, error) {
	var f entity.Food
	err := r.DB.First(&f, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: food %d", apperr.ErrNotFound, id)
	}
	return &f, err
}

type FoodFilter struct {
	Vegetarian    bool
	AvailableOnly bool
	CategoryID    uint
}

func (r *FoodRepository) ListByRestaurant(restaurantID uint, filter FoodFilter) ([]entity.Food, error) {
	q := r.DB.Where("restaurant_id = ?", restaurantID)
	if filter.Vegetarian {
		q = q.Where("vegetarian = ?", true)
	}
	if filter.AvailableOnly {
		q = q.Where("available = ?", true)
	}
	if filter.CategoryID != 0 {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	var out []entity.Food
	err := q.Order("id").Find(&out).Error
	return out, err
}

func (r *FoodRepository) Search(keyword string) ([]entity.Food, error) {
	var out []entity.Food
	pattern := "%" + keyword + "%"
	err := r.DB.Where("name LIKE ?", pattern).Order("id").Find(&out).Error
	return out, err
}
