package repository

import (
	"errors"
	"fmt"

	"github.com/campo22/food-delivery-app/entity"
	"github.com/campo22/food-delivery-app/pkg/apperr"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) Create(tx *gorm.DB, c *entity.Cart) error {
	return tx.Create(c).Error
}

// GetCartWithItems loads the customer's cart. Every customer gets a
// cart at signup, so a miss means that invariant was broken somewhere.
func (r *CartRepository) GetCartWithItems(db *gorm.DB, customerID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := db.Where("customer_id = ?", customerID).
		Preload("Items", func(q *gorm.DB) *gorm.DB { return q.Order("cart_items.id") }).
		Preload("Items.Food").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: cart for customer %d", apperr.ErrNotFound, customerID)
	}
	return &c, err
}

// FindItemWithCart loads a line together with its cart so callers can
// check ownership.
func (r *CartRepository) FindItemWithCart(tx *gorm.DB, itemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := tx.Preload("Cart").First(&it, itemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: cart item %d", apperr.ErrNotFound, itemID)
	}
	return &it, err
}

// FindMergeLine returns the existing line for (cart, food, customKey),
// or (nil, nil) when the add should open a new line.
func (r *CartRepository) FindMergeLine(tx *gorm.DB, cartID, foodID uint, customKey string) (*entity.CartItem, error) {
	var it entity.CartItem
	err := tx.Where("cart_id = ? AND food_id = ? AND custom_key = ?", cartID, foodID, customKey).
		First(&it).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) CreateItem(tx *gorm.DB, it *entity.CartItem) error {
	return tx.Omit(clause.Associations).Create(it).Error
}

func (r *CartRepository) SaveItem(tx *gorm.DB, it *entity.CartItem) error {
	return tx.Omit(clause.Associations).Save(it).Error
}

func (r *CartRepository) DeleteItem(tx *gorm.DB, itemID uint) error {
	return tx.Delete(&entity.CartItem{}, itemID).Error
}

func (r *CartRepository) DeleteItems(tx *gorm.DB, cartID uint) error {
	return tx.Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) ItemsForTotal(tx *gorm.DB, cartID uint) ([]entity.CartItem, error) {
	var out []entity.CartItem
	err := tx.Where("cart_id = ?", cartID).Find(&out).Error
	return out, err
}

// CommitTotal writes the recomputed total behind an optimistic version
// check. Zero rows affected means another transaction won the race;
// the whole unit of work must roll back and the caller may retry.
func (r *CartRepository) CommitTotal(tx *gorm.DB, cart *entity.Cart, total int64) error {
	res := tx.Model(&entity.Cart{}).
		Where("id = ? AND version = ?", cart.ID, cart.Version).
		Updates(map[string]any{"total": total, "version": cart.Version + 1})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: cart %d was modified concurrently", apperr.ErrConflict, cart.ID)
	}
	cart.Total = total
	cart.Version++
	return nil
}
