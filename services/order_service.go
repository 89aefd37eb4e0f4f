package services

import (
	"fmt"

	"github.com/campo22/food-delivery-app/entity"
	"github.com/campo22/food-delivery-app/pkg/apperr"
	"github.com/campo22/food-delivery-app/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	RestRepo *repository.RestaurantRepository
	UserRepo *repository.UserRepository
	Guard    Guard
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	restRepo *repository.RestaurantRepository,
	userRepo *repository.UserRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, RestRepo: restRepo, UserRepo: userRepo}
}

type AddressIn struct {
	Street string `json:"street" binding:"required"`
	City   string `json:"city" binding:"required"`
	State  string `json:"state" binding:"required"`
}

type CheckoutIn struct {
	RestaurantID    uint      `json:"restaurantId" binding:"required"`
	DeliveryAddress AddressIn `json:"deliveryAddress" binding:"required"`
}

// Checkout snapshots the customer's cart into a PENDING order and
// empties the cart, all in one transaction: either the order exists
// and the cart is empty, or neither happened. It is not idempotent;
// retry de-duplication is the caller's problem.
func (s *OrderService) Checkout(actor Principal, in *CheckoutIn) (*OrderView, error) {
	restaurant, err := s.RestRepo.FindByID(in.RestaurantID)
	if err != nil {
		return nil, err
	}

	var orderID uint
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		address, err := s.UserRepo.FindAddressMatch(tx, actor.ID,
			in.DeliveryAddress.Street, in.DeliveryAddress.City, in.DeliveryAddress.State)
		if err != nil {
			return err
		}
		if address == nil {
			address = &entity.Address{
				UserID: actor.ID,
				Street: in.DeliveryAddress.Street,
				City:   in.DeliveryAddress.City,
				State:  in.DeliveryAddress.State,
			}
			if err := s.UserRepo.AddAddress(tx, address); err != nil {
				return err
			}
		}

		cart, err := s.CartRepo.GetCartWithItems(tx, actor.ID)
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return fmt.Errorf("%w: cannot checkout an empty cart", apperr.ErrOperationNotAllowed)
		}

		// Snapshot every cart line; the unit price captured on the
		// line is what the order keeps forever.
		items := make([]entity.OrderItem, 0, len(cart.Items))
		for _, it := range cart.Items {
			items = append(items, entity.OrderItem{
				FoodID:         it.FoodID,
				Quantity:       it.Quantity,
				UnitPrice:      it.UnitPrice,
				LineTotal:      it.LineTotal,
				Customizations: it.Customizations,
			})
		}

		order := entity.Order{
			CustomerID:        actor.ID,
			RestaurantID:      restaurant.ID,
			DeliveryAddressID: address.ID,
			Status:            entity.StatusPending,
			TotalAmount:       OrderTotal(items),
			TotalItemCount:    len(items),
			Items:             items,
		}
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}
		orderID = order.ID

		// Same unit of work as the order insert: no phantom double
		// checkout.
		if err := s.CartRepo.DeleteItems(tx, cart.ID); err != nil {
			return err
		}
		return s.CartRepo.CommitTotal(tx, cart, 0)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id":      orderID,
		"customer_id":   actor.ID,
		"restaurant_id": restaurant.ID,
	}).Info("order created, cart cleared")

	o, err := s.Repo.FindByID(s.DB, orderID)
	if err != nil {
		return nil, err
	}
	return mapOrderView(o), nil
}

func (s *OrderService) ListByCustomer(actor Principal) ([]OrderView, error) {
	orders, err := s.Repo.ListByCustomer(actor.ID)
	if err != nil {
		return nil, err
	}
	return mapOrderViews(orders), nil
}

// ListByRestaurant is owner-gated; the optional status filter must be
// one of the closed status set.
func (s *OrderService) ListByRestaurant(actor Principal, restaurantID uint, statusFilter string) ([]OrderView, error) {
	restaurant, err := s.RestRepo.FindByID(restaurantID)
	if err != nil {
		return nil, err
	}
	if err := s.Guard.Authorize(actor, restaurant.OwnerID, "restaurant", restaurant.ID); err != nil {
		return nil, err
	}

	var status *entity.OrderStatus
	if statusFilter != "" {
		st := entity.OrderStatus(statusFilter)
		if !st.Valid() {
			return nil, fmt.Errorf("%w: unknown order status %q", apperr.ErrOperationNotAllowed, statusFilter)
		}
		status = &st
	}

	orders, err := s.Repo.ListByRestaurant(restaurantID, status)
	if err != nil {
		return nil, err
	}
	return mapOrderViews(orders), nil
}

// FindByID is visible to the order's customer, the restaurant's owner,
// and admins; nobody else.
func (s *OrderService) FindByID(actor Principal, orderID uint) (*OrderView, error) {
	o, err := s.Repo.FindByID(s.DB, orderID)
	if err != nil {
		return nil, err
	}

	isCustomer := o.CustomerID == actor.ID
	isOwner := o.Restaurant.OwnerID == actor.ID
	if !isCustomer && !isOwner && actor.Role != entity.RoleAdmin {
		return nil, fmt.Errorf("%w: user %d may not view order %d",
			apperr.ErrAccessDenied, actor.ID, o.ID)
	}
	return mapOrderView(o), nil
}

func mapOrderViews(orders []entity.Order) []OrderView {
	out := make([]OrderView, 0, len(orders))
	for i := range orders {
		out = append(out, *mapOrderView(&orders[i]))
	}
	return out
}
