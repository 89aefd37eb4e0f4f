package repository

import (
	"errors"
	"fmt"

	"github.com/campo22/food-delivery-app/entity"
	"github.com/campo22/food-delivery-app/pkg/apperr"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// Create persists the order together with its items (association
// cascade) inside the caller's transaction. Parent records are
// referenced by id only, never written from here.
func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Omit("Customer", "Restaurant", "DeliveryAddress").Create(o).Error
}

func (r *OrderRepository) FindByID(db *gorm.DB, id uint) (*entity.Order, error) {
	var o entity.Order
	err := db.
		Preload("Customer").
		Preload("Restaurant").
		Preload("DeliveryAddress").
		Preload("Items", func(q *gorm.DB) *gorm.DB { return q.Order("order_items.id") }).
		Preload("Items.Food").
		First(&o, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: order %d", apperr.ErrNotFound, id)
	}
	return &o, err
}

func (r *OrderRepository) ListByCustomer(customerID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.
		Preload("Customer").
		Preload("Restaurant").
		Preload("DeliveryAddress").
		Preload("Items").
		Preload("Items.Food").
		Where("customer_id = ?", customerID).
		Order("id DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListByRestaurant(restaurantID uint, status *entity.OrderStatus) ([]entity.Order, error) {
	q := r.DB.
		Preload("Customer").
		Preload("Restaurant").
		Preload("DeliveryAddress").
		Preload("Items").
		Preload("Items.Food").
		Where("restaurant_id = ?", restaurantID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var out []entity.Order
	err := q.Order("id DESC").Find(&out).Error
	return out, err
}

// UpdateStatusGuard flips the status only if the row still carries the
// expected current value. Zero rows affected means an invalid or
// racing transition; the caller decides how to report it.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
