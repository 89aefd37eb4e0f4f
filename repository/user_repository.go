package repository

import (
	"errors"
	"fmt"

	"github.com/campo22/food-delivery-app/entity"
	"github.com/campo22/food-delivery-app/pkg/apperr"
	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(tx *gorm.DB, u *entity.User) error {
	return tx.Create(u).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	err := r.DB.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %d", apperr.ErrNotFound, id)
	}
	return &u, err
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	err := r.DB.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %s", apperr.ErrNotFound, email)
	}
	return &u, err
}

func (r *UserRepository) EmailTaken(email string) (bool, error) {
	var n int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&n).Error
	return n > 0, err
}

// FindAddressMatch looks for an identical row in the user's address
// book; a miss is reported as (nil, nil).
func (r *UserRepository) FindAddressMatch(tx *gorm.DB, userID uint, street, city, state string) (*entity.Address, error) {
	var a entity.Address
	err := tx.Where("user_id = ? AND street = ? AND city = ? AND state = ?",
		userID, street, city, state).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *UserRepository) AddAddress(tx *gorm.DB, a *entity.Address) error {
	return tx.Create(a).Error
}

func (r *UserRepository) Addresses(userID uint) ([]entity.Address, error) {
	var out []entity.Address
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&out).Error
	return out, err
}
