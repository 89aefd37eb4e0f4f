package repository

import (
	"errors"
	"fmt"

	"github.com/campo22/food-delivery-app/entity"
	"github.com/campo22/food-delivery-app/pkg/apperr"
	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(tx *gorm.DB, rest *entity.Restaurant) error {
	return tx.Create(rest).Error
}

func (r *RestaurantRepository) Save(tx *gorm.DB, rest *entity.Restaurant) error {
	return tx.Save(rest).Error
}

func (r *RestaurantRepository) Delete(tx *gorm.DB, id uint) error {
	return tx.Delete(&entity.Restaurant{}, id).Error
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.First(&rest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: restaurant %d", apperr.ErrNotFound, id)
	}
	return &rest, err
}

// FindByOwner reports a missing restaurant as (nil, nil); owners
// without a restaurant are a normal state.
func (r *RestaurantRepository) FindByOwner(ownerID uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.Where("owner_id = ?", ownerID).First(&rest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) List() ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) Search(keyword string) ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	pattern := "%" + keyword + "%"
	err := r.DB.
		Where("name LIKE ? OR cuisine_type LIKE ?", pattern, pattern).
		Order("id").Find(&out).Error
	return out, err
}

// ----- favorites -----

func (r *RestaurantRepository) FavoriteExists(userID, restaurantID uint) (bool, error) {
	var n int64
	err := r.DB.Model(&entity.Favorite{}).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Count(&n).Error
	return n > 0, err
}

func (r *RestaurantRepository) CreateFavorite(tx *gorm.DB, f *entity.Favorite) error {
	return tx.Create(f).Error
}

func (r *RestaurantRepository) ListFavorites(userID uint) ([]entity.Favorite, error) {
	var out []entity.Favorite
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&out).Error
	return out, err
}
