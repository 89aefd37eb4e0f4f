package entity

import (
	"gorm.io/gorm"
)

type Address struct {
	gorm.Model
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`

	// Owning user's address book; orders reference rows by id.
	UserID uint `json:"userId"`
}
