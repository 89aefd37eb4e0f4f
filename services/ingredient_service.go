package services

import (
	"github.com/campo22/food-delivery-app/entity"
	"github.com/campo22/food-delivery-app/repository"
	"gorm.io/gorm"
)

type IngredientService struct {
	DB       *gorm.DB
	Repo     *repository.IngredientRepository
	RestRepo *repository.RestaurantRepository
	Guard    Guard
}

func NewIngredientService(db *gorm.DB, ir *repository.IngredientRepository, rr *repository.RestaurantRepository) *IngredientService {
	return &IngredientService{DB: db, Repo: ir, RestRepo: rr}
}

type IngredientCategoryIn struct {
	Name         string `json:"name" binding:"required"`
	RestaurantID uint   `json:"restaurantId" binding:"required"`
}

type IngredientItemIn struct {
	Name       string `json:"name" binding:"required"`
	CategoryID uint   `json:"categoryId" binding:"required"`
}

func (s *IngredientService) CreateCategory(actor Principal, in *IngredientCategoryIn) (*entity.IngredientCategory, error) {
	rest, err := s.RestRepo.FindByID(in.RestaurantID)
	if err != nil {
		return nil, err
	}
	if err := s.Guard.Authorize(actor, rest.OwnerID, "restaurant", rest.ID); err != nil {
		return nil, err
	}

	cat := &entity.IngredientCategory{Name: in.Name, RestaurantID: rest.ID}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.CreateCategory(tx, cat)
	})
	if err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *IngredientService) CreateItem(actor Principal, in *IngredientItemIn) (*entity.IngredientItem, error) {
	cat, err := s.Repo.FindCategoryByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	rest, err := s.RestRepo.FindByID(cat.RestaurantID)
	if err != nil {
		return nil, err
	}
	if err := s.Guard.Authorize(actor, rest.OwnerID, "ingredient category", cat.ID); err != nil {
		return nil, err
	}

	item := &entity.IngredientItem{
		Name:         in.Name,
		InStock:      true,
		CategoryID:   cat.ID,
		RestaurantID: rest.ID,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.CreateItem(tx, item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *IngredientService) ToggleStock(actor Principal, itemID uint) (*entity.IngredientItem, error) {
	item, err := s.Repo.FindItemByID(itemID)
	if err != nil {
		return nil, err
	}
	rest, err := s.RestRepo.FindByID(item.RestaurantID)
	if err != nil {
		return nil, err
	}
	if err := s.Guard.Authorize(actor, rest.OwnerID, "ingredient", item.ID); err != nil {
		return nil, err
	}

	item.InStock = !item.InStock
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.SaveItem(tx, item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *IngredientService) ListByRestaurant(actor Principal, restaurantID uint) ([]entity.IngredientItem, error) {
	rest, err := s.RestRepo.FindByID(restaurantID)
	if err != nil {
		return nil, err
	}
	if err := s.Guard.Authorize(actor, rest.OwnerID, "restaurant", rest.ID); err != nil {
		return nil, err
	}
	return s.Repo.ListItemsByRestaurant(restaurantID)
}

func (s *IngredientService) ListCategories(actor Principal, restaurantID uint) ([]entity.IngredientCategory, error) {
	rest, err := s.RestRepo.FindByID(restaurantID)
	if err != nil {
		return nil, err
	}
	if err := s.Guard.Authorize(actor, rest.OwnerID, "restaurant", rest.ID); err != nil {
		return nil, err
	}
	return s.Repo.ListCategoriesByRestaurant(restaurantID)
}
