package services

import (
	"testing"

	"github.com/campo22/food-delivery-app/entity"
	"github.com/campo22/food-delivery-app/pkg/apperr"
	"github.com/campo22/food-delivery-app/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFoodService(db *gorm.DB) *FoodService {
	return NewFoodService(db,
		repository.NewFoodRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewCategoryRepository(db),
	)
}

// The guard on nested resources resolves against the owning
// restaurant's owner, not the food row itself.
func TestFoodMutationsGuardedByRestaurantOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newFoodService(db)
	owner := seedUser(t, db, entity.RoleOwner)
	stranger := seedUser(t, db, entity.RoleOwner)
	rest := seedRestaurant(t, db, owner.ID)
	cat := seedCategory(t, db, rest.ID)

	in := &FoodIn{Name: "Patacones", Price: 350, RestaurantID: rest.ID, CategoryID: cat.ID}
	_, err := svc.Create(principal(stranger), in)
	assert.ErrorIs(t, err, apperr.ErrAccessDenied)

	food, err := svc.Create(principal(owner), in)
	require.NoError(t, err)
	assert.True(t, food.Available)

	_, err = svc.ToggleAvailability(principal(stranger), food.ID)
	assert.ErrorIs(t, err, apperr.ErrAccessDenied)

	food, err = svc.ToggleAvailability(principal(owner), food.ID)
	require.NoError(t, err)
	assert.False(t, food.Available)

	err = svc.Delete(principal(stranger), food.ID)
	assert.ErrorIs(t, err, apperr.ErrAccessDenied)
	require.NoError(t, svc.Delete(principal(owner), food.ID))
}

func TestFoodCreateChecksCategoryBinding(t *testing.T) {
	db := newTestDB(t)
	svc := newFoodService(db)
	owner := seedUser(t, db, entity.RoleOwner)
	otherOwner := seedUser(t, db, entity.RoleOwner)
	rest := seedRestaurant(t, db, owner.ID)
	otherRest := seedRestaurant(t, db, otherOwner.ID)
	foreignCat := seedCategory(t, db, otherRest.ID)

	_, err := svc.Create(principal(owner), &FoodIn{
		Name: "Cazuela", Price: 900, RestaurantID: rest.ID, CategoryID: foreignCat.ID,
	})
	assert.ErrorIs(t, err, apperr.ErrOperationNotAllowed)
}

func TestFoodDetail(t *testing.T) {
	db := newTestDB(t)
	svc := newFoodService(db)
	owner := seedUser(t, db, entity.RoleOwner)
	rest := seedRestaurant(t, db, owner.ID)
	cat := seedCategory(t, db, rest.ID)
	food := seedFood(t, db, rest.ID, cat.ID, "Aborrajado", 320)

	got, err := svc.Detail(food.ID)
	require.NoError(t, err)
	assert.Equal(t, "Aborrajado", got.Name)
	assert.Equal(t, int64(320), got.Price)

	_, err = svc.Detail(404)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestFoodListFilters(t *testing.T) {
	db := newTestDB(t)
	svc := newFoodService(db)
	owner := seedUser(t, db, entity.RoleOwner)
	rest := seedRestaurant(t, db, owner.ID)
	cat := seedCategory(t, db, rest.ID)
	seedFood(t, db, rest.ID, cat.ID, "Arepa", 200)
	veg := seedFood(t, db, rest.ID, cat.ID, "Ensalada", 450)
	require.NoError(t, db.Model(veg).Update("vegetarian", true).Error)

	all, err := svc.ListByRestaurant(rest.ID, repository.FoodFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	vegOnly, err := svc.ListByRestaurant(rest.ID, repository.FoodFilter{Vegetarian: true})
	require.NoError(t, err)
	require.Len(t, vegOnly, 1)
	assert.Equal(t, "Ensalada", vegOnly[0].Name)

	_, err = svc.ListByRestaurant(404, repository.FoodFilter{})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
