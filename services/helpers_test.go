package services

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/campo22/food-delivery-app/entity"
	"github.com/campo22/food-delivery-app/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Address{},
		&entity.Restaurant{}, &entity.Category{},
		&entity.IngredientCategory{}, &entity.IngredientItem{},
		&entity.Food{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Favorite{},
	))
	return db
}

var userSeq int

func seedUser(t *testing.T, db *gorm.DB, role entity.Role) *entity.User {
	t.Helper()
	userSeq++
	u := &entity.User{
		Email:    fmt.Sprintf("user%d@test.local", userSeq),
		Password: "x",
		FullName: fmt.Sprintf("User %d", userSeq),
		Role:     role,
	}
	require.NoError(t, db.Create(u).Error)
	require.NoError(t, db.Create(&entity.Cart{CustomerID: u.ID}).Error)
	return u
}

func seedRestaurant(t *testing.T, db *gorm.DB, ownerID uint) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{
		Name:        "Casa Diver",
		Description: "Comida criolla",
		CuisineType: "Colombian",
		Open:        true,
		OwnerID:     ownerID,
	}
	require.NoError(t, db.Create(r).Error)
	return r
}

func seedCategory(t *testing.T, db *gorm.DB, restaurantID uint) *entity.Category {
	t.Helper()
	c := &entity.Category{Name: "Mains", RestaurantID: restaurantID}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedFood(t *testing.T, db *gorm.DB, restaurantID, categoryID uint, name string, price int64) *entity.Food {
	t.Helper()
	f := &entity.Food{
		Name:         name,
		Price:        price,
		Available:    true,
		RestaurantID: restaurantID,
		CategoryID:   categoryID,
	}
	require.NoError(t, db.Create(f).Error)
	return f
}

func principal(u *entity.User) Principal {
	return Principal{ID: u.ID, Role: u.Role, Email: u.Email}
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewFoodRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewUserRepository(db),
	)
}
