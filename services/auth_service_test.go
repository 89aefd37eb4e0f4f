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

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(db, repository.NewUserRepository(db), repository.NewCartRepository(db))
}

func TestRegisterCreatesCart(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register(&RegisterIn{
		Email: "diver@test.local", Password: "secret1", FullName: "Diver",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, user.Role)

	var cart entity.Cart
	require.NoError(t, db.Where("customer_id = ?", user.ID).First(&cart).Error)
	assert.Zero(t, cart.Total)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(&RegisterIn{Email: "a@test.local", Password: "secret1", FullName: "A"})
	require.NoError(t, err)
	_, err = svc.Register(&RegisterIn{Email: "a@test.local", Password: "secret2", FullName: "B"})
	assert.ErrorIs(t, err, apperr.ErrOperationNotAllowed)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(&RegisterIn{
		Email: "root@test.local", Password: "secret1", FullName: "Root", Role: entity.RoleAdmin,
	})
	assert.ErrorIs(t, err, apperr.ErrOperationNotAllowed)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(&RegisterIn{Email: "b@test.local", Password: "secret1", FullName: "B"})
	require.NoError(t, err)

	user, err := svc.Login(&LoginIn{Email: "b@test.local", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "b@test.local", user.Email)

	_, err = svc.Login(&LoginIn{Email: "b@test.local", Password: "wrong"})
	assert.ErrorIs(t, err, apperr.ErrAccessDenied)

	_, err = svc.Login(&LoginIn{Email: "nobody@test.local", Password: "secret1"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
