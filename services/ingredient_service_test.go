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

func newIngredientService(db *gorm.DB) *IngredientService {
	return NewIngredientService(db,
		repository.NewIngredientRepository(db),
		repository.NewRestaurantRepository(db),
	)
}

func TestIngredientLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := newIngredientService(db)
	owner := seedUser(t, db, entity.RoleOwner)
	stranger := seedUser(t, db, entity.RoleOwner)
	rest := seedRestaurant(t, db, owner.ID)

	catIn := &IngredientCategoryIn{Name: "Proteins", RestaurantID: rest.ID}
	_, err := svc.CreateCategory(principal(stranger), catIn)
	assert.ErrorIs(t, err, apperr.ErrAccessDenied)

	cat, err := svc.CreateCategory(principal(owner), catIn)
	require.NoError(t, err)

	itemIn := &IngredientItemIn{Name: "Chicharrón", CategoryID: cat.ID}
	_, err = svc.CreateItem(principal(stranger), itemIn)
	assert.ErrorIs(t, err, apperr.ErrAccessDenied)

	item, err := svc.CreateItem(principal(owner), itemIn)
	require.NoError(t, err)
	assert.True(t, item.InStock)
	assert.Equal(t, rest.ID, item.RestaurantID)

	item, err = svc.ToggleStock(principal(owner), item.ID)
	require.NoError(t, err)
	assert.False(t, item.InStock)

	items, err := svc.ListByRestaurant(principal(owner), rest.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = svc.ListByRestaurant(principal(stranger), rest.ID)
	assert.ErrorIs(t, err, apperr.ErrAccessDenied)
}
