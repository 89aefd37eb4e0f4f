package services

import (
	"testing"

	"github.com/campo22/food-delivery-app/entity"
	"github.com/campo22/food-delivery-app/pkg/apperr"
	"github.com/campo22/food-delivery-app/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemMergesOnSameFoodAndCustomizations(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, entity.RoleCustomer)
	owner := seedUser(t, db, entity.RoleOwner)
	rest := seedRestaurant(t, db, owner.ID)
	cat := seedCategory(t, db, rest.ID)
	food := seedFood(t, db, rest.ID, cat.ID, "Bandeja paisa", 500)

	_, err := svc.AddItem(principal(customer), &AddCartItemIn{
		FoodID: food.ID, Quantity: 1, Customizations: []string{"no beans", "extra rice"},
	})
	require.NoError(t, err)

	// Same set in a different order must land on the same line.
	cart, err := svc.AddItem(principal(customer), &AddCartItemIn{
		FoodID: food.ID, Quantity: 2, Customizations: []string{"extra rice", "no beans"},
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, int64(1500), cart.Items[0].LineTotal)
	assert.Equal(t, int64(1500), cart.Total)

	// A different set opens a new line.
	cart, err = svc.AddItem(principal(customer), &AddCartItemIn{
		FoodID: food.ID, Quantity: 1, Customizations: []string{"no beans"},
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, int64(2000), cart.Total)
}

func TestAddItemUnknownFood(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, entity.RoleCustomer)

	_, err := svc.AddItem(principal(customer), &AddCartItemIn{FoodID: 999, Quantity: 1})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCartTotalInvariantAfterEveryMutation(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, entity.RoleCustomer)
	owner := seedUser(t, db, entity.RoleOwner)
	rest := seedRestaurant(t, db, owner.ID)
	cat := seedCategory(t, db, rest.ID)
	f1 := seedFood(t, db, rest.ID, cat.ID, "Arepa", 500)
	f2 := seedFood(t, db, rest.ID, cat.ID, "Jugo", 300)

	checkInvariant := func(cart *CartView) {
		t.Helper()
		var sum int64
		for _, it := range cart.Items {
			sum += it.LineTotal
		}
		assert.Equal(t, sum, cart.Total)
	}

	cart, err := svc.AddItem(principal(customer), &AddCartItemIn{FoodID: f1.ID, Quantity: 2})
	require.NoError(t, err)
	checkInvariant(cart)

	cart, err = svc.AddItem(principal(customer), &AddCartItemIn{FoodID: f2.ID, Quantity: 1})
	require.NoError(t, err)
	checkInvariant(cart)
	assert.Equal(t, int64(1300), cart.Total)

	cart, err = svc.UpdateQuantity(principal(customer), &UpdateCartItemIn{
		CartItemID: cart.Items[0].ID, Quantity: 5,
	})
	require.NoError(t, err)
	checkInvariant(cart)
	assert.Equal(t, int64(2800), cart.Total)

	cart, err = svc.RemoveItem(principal(customer), cart.Items[1].ID)
	require.NoError(t, err)
	checkInvariant(cart)
	assert.Equal(t, int64(2500), cart.Total)

	cart, err = svc.Clear(principal(customer))
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, int64(0), cart.Total)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, entity.RoleCustomer)
	owner := seedUser(t, db, entity.RoleOwner)
	rest := seedRestaurant(t, db, owner.ID)
	cat := seedCategory(t, db, rest.ID)
	food := seedFood(t, db, rest.ID, cat.ID, "Empanada", 200)

	cart, err := svc.AddItem(principal(customer), &AddCartItemIn{FoodID: food.ID, Quantity: 3})
	require.NoError(t, err)

	cart, err = svc.UpdateQuantity(principal(customer), &UpdateCartItemIn{
		CartItemID: cart.Items[0].ID, Quantity: 0,
	})
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, int64(0), cart.Total)
}

func TestCartItemOwnershipEnforced(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, entity.RoleCustomer)
	intruder := seedUser(t, db, entity.RoleCustomer)
	owner := seedUser(t, db, entity.RoleOwner)
	rest := seedRestaurant(t, db, owner.ID)
	cat := seedCategory(t, db, rest.ID)
	food := seedFood(t, db, rest.ID, cat.ID, "Tamal", 400)

	cart, err := svc.AddItem(principal(customer), &AddCartItemIn{FoodID: food.ID, Quantity: 1})
	require.NoError(t, err)

	_, err = svc.UpdateQuantity(principal(intruder), &UpdateCartItemIn{
		CartItemID: cart.Items[0].ID, Quantity: 9,
	})
	assert.ErrorIs(t, err, apperr.ErrAccessDenied)

	_, err = svc.RemoveItem(principal(intruder), cart.Items[0].ID)
	assert.ErrorIs(t, err, apperr.ErrAccessDenied)

	// Untouched.
	got, err := svc.Get(customer.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 1, got.Items[0].Quantity)
}

// Carts are personal: the admin override that applies to restaurant
// resources does not extend to someone else's cart lines.
func TestAdminCannotTouchForeignCart(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, entity.RoleCustomer)
	admin := seedUser(t, db, entity.RoleAdmin)
	owner := seedUser(t, db, entity.RoleOwner)
	rest := seedRestaurant(t, db, owner.ID)
	cat := seedCategory(t, db, rest.ID)
	food := seedFood(t, db, rest.ID, cat.ID, "Lulada", 400)

	cart, err := svc.AddItem(principal(customer), &AddCartItemIn{FoodID: food.ID, Quantity: 2})
	require.NoError(t, err)

	_, err = svc.UpdateQuantity(principal(admin), &UpdateCartItemIn{
		CartItemID: cart.Items[0].ID, Quantity: 9,
	})
	assert.ErrorIs(t, err, apperr.ErrAccessDenied)

	_, err = svc.RemoveItem(principal(admin), cart.Items[0].ID)
	assert.ErrorIs(t, err, apperr.ErrAccessDenied)

	got, err := svc.Get(customer.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, int64(800), got.Total)
}

// A separator character inside a customization must not fold two
// different sets onto the same merge line.
func TestCustomizationKeySeparatorSafe(t *testing.T) {
	assert.NotEqual(t,
		entity.CustomizationKey([]string{"a|b"}),
		entity.CustomizationKey([]string{"a", "b"}),
	)

	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, entity.RoleCustomer)
	owner := seedUser(t, db, entity.RoleOwner)
	rest := seedRestaurant(t, db, owner.ID)
	cat := seedCategory(t, db, rest.ID)
	food := seedFood(t, db, rest.ID, cat.ID, "Perro caliente", 450)

	_, err := svc.AddItem(principal(customer), &AddCartItemIn{
		FoodID: food.ID, Quantity: 1, Customizations: []string{"a|b"},
	})
	require.NoError(t, err)
	cart, err := svc.AddItem(principal(customer), &AddCartItemIn{
		FoodID: food.ID, Quantity: 1, Customizations: []string{"a", "b"},
	})
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
}

func TestCartLineKeepsPriceSnapshot(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	customer := seedUser(t, db, entity.RoleCustomer)
	owner := seedUser(t, db, entity.RoleOwner)
	rest := seedRestaurant(t, db, owner.ID)
	cat := seedCategory(t, db, rest.ID)
	food := seedFood(t, db, rest.ID, cat.ID, "Sancocho", 500)

	cart, err := svc.AddItem(principal(customer), &AddCartItemIn{FoodID: food.ID, Quantity: 2})
	require.NoError(t, err)

	// A later price edit must not move existing lines.
	require.NoError(t, db.Model(&entity.Food{}).Where("id = ?", food.ID).Update("price", 900).Error)

	cart, err = svc.UpdateQuantity(principal(customer), &UpdateCartItemIn{
		CartItemID: cart.Items[0].ID, Quantity: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(500), cart.Items[0].UnitPrice)
	assert.Equal(t, int64(1500), cart.Total)
}

func TestCommitTotalRejectsStaleVersion(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCartRepository(db)
	customer := seedUser(t, db, entity.RoleCustomer)

	cart, err := repo.GetCartWithItems(db, customer.ID)
	require.NoError(t, err)
	stale := *cart

	require.NoError(t, repo.CommitTotal(db, cart, 100))

	err = repo.CommitTotal(db, &stale, 200)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}
