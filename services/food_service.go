package services

import (
	"fmt"

	"github.com/campo22/food-delivery-app/entity"
	"github.com/campo22/food-delivery-app/pkg/apperr"
	"github.com/campo22/food-delivery-app/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type FoodService struct {
	DB       *gorm.DB
	Repo     *repository.FoodRepository
	RestRepo *repository.RestaurantRepository
	CatRepo  *repository.CategoryRepository
	Guard    Guard
}

func NewFoodService(db *gorm.DB, fr *repository.FoodRepository, rr *repository.RestaurantRepository, cr *repository.CategoryRepository) *FoodService {
	return &FoodService{DB: db, Repo: fr, RestRepo: rr, CatRepo: cr}
}

type FoodIn struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Price        int64  `json:"price" binding:"required,min=1"`
	Vegetarian   bool   `json:"vegetarian"`
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	CategoryID   uint   `json:"categoryId" binding:"required"`
}

// Create adds a dish to the menu. The guard resolves against the
// owning restaurant's owner, not the food row itself.
func (s *FoodService) Create(actor Principal, in *FoodIn) (*entity.Food, error) {
	rest, err := s.RestRepo.FindByID(in.RestaurantID)
	if err != nil {
		return nil, err
	}
	if err := s.Guard.Authorize(actor, rest.OwnerID, "restaurant", rest.ID); err != nil {
		return nil, err
	}

	cat, err := s.CatRepo.FindByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat.RestaurantID != rest.ID {
		return nil, fmt.Errorf("%w: category %d does not belong to restaurant %d",
			apperr.ErrOperationNotAllowed, cat.ID, rest.ID)
	}

	food := &entity.Food{
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Available:    true,
		Vegetarian:   in.Vegetarian,
		RestaurantID: rest.ID,
		CategoryID:   cat.ID,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, food)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"food_id":       food.ID,
		"restaurant_id": rest.ID,
	}).Info("food created")
	return food, nil
}

// ToggleAvailability flips a dish in or out of the menu.
func (s *FoodService) ToggleAvailability(actor Principal, foodID uint) (*entity.Food, error) {
	food, err := s.Repo.FindByID(foodID)
	if err != nil {
		return nil, err
	}
	rest, err := s.RestRepo.FindByID(food.RestaurantID)
	if err != nil {
		return nil, err
	}
	if err := s.Guard.Authorize(actor, rest.OwnerID, "food", food.ID); err != nil {
		return nil, err
	}

	food.Available = !food.Available
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Save(tx, food)
	})
	if err != nil {
		return nil, err
	}
	return food, nil
}

func (s *FoodService) Delete(actor Principal, foodID uint) error {
	food, err := s.Repo.FindByID(foodID)
	if err != nil {
		return err
	}
	rest, err := s.RestRepo.FindByID(food.RestaurantID)
	if err != nil {
		return err
	}
	if err := s.Guard.Authorize(actor, rest.OwnerID, "food", food.ID); err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Delete(tx, food.ID)
	})
	if err != nil {
		return err
	}
	logrus.WithField("food_id", food.ID).Warn("food deleted")
	return nil
}

func (s *FoodService) ListByRestaurant(restaurantID uint, filter repository.FoodFilter) ([]entity.Food, error) {
	if _, err := s.RestRepo.FindByID(restaurantID); err != nil {
		return nil, err
	}
	return s.Repo.ListByRestaurant(restaurantID, filter)
}

func (s *FoodService) Search(keyword string) ([]entity.Food, error) {
	return s.Repo.Search(keyword)
}

func (s *FoodService) Detail(foodID uint) (*entity.Food, error) {
	return s.Repo.FindByID(foodID)
}
