package configs

import (
	"os"

	"github.com/campo22/food-delivery-app/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin makes sure one admin account exists. Credentials come from
// the environment; nothing is seeded when they are absent.
func SeedAdmin() error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var n int64
	if err := db.Model(&entity.User{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		admin := entity.User{
			Email:    email,
			Password: string(hash),
			FullName: "Administrator",
			Role:     entity.RoleAdmin,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		return tx.Create(&entity.Cart{CustomerID: admin.ID}).Error
	})
}
