package services

import (
	"github.com/campo22/food-delivery-app/entity"
	"github.com/campo22/food-delivery-app/repository"
	"gorm.io/gorm"
)

type CategoryService struct {
	DB       *gorm.DB
	Repo     *repository.CategoryRepository
	RestRepo *repository.RestaurantRepository
	Guard    Guard
}

func NewCategoryService(db *gorm.DB, cr *repository.CategoryRepository, rr *repository.RestaurantRepository) *CategoryService {
	return &CategoryService{DB: db, Repo: cr, RestRepo: rr}
}

type CategoryIn struct {
	Name         string `json:"name" binding:"required"`
	RestaurantID uint   `json:"restaurantId" binding:"required"`
}

func (s *CategoryService) Create(actor Principal, in *CategoryIn) (*entity.Category, error) {
	rest, err := s.RestRepo.FindByID(in.RestaurantID)
	if err != nil {
		return nil, err
	}
	if err := s.Guard.Authorize(actor, rest.OwnerID, "restaurant", rest.ID); err != nil {
		return nil, err
	}

	cat := &entity.Category{Name: in.Name, RestaurantID: rest.ID}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, cat)
	})
	if err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) ListByRestaurant(restaurantID uint) ([]entity.Category, error) {
	if _, err := s.RestRepo.FindByID(restaurantID); err != nil {
		return nil, err
	}
	return s.Repo.ListByRestaurant(restaurantID)
}
