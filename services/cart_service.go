package services

import (
	"fmt"

	"github.com/campo22/food-delivery-app/entity"
	"github.com/campo22/food-delivery-app/pkg/apperr"
	"github.com/campo22/food-delivery-app/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	Repo     *repository.CartRepository
	FoodRepo *repository.FoodRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, fr *repository.FoodRepository) *CartService {
	return &CartService{DB: db, Repo: cr, FoodRepo: fr}
}

type AddCartItemIn struct {
	FoodID         uint     `json:"foodId" binding:"required"`
	Quantity       int      `json:"quantity" binding:"required,min=1"`
	Customizations []string `json:"customizations"`
}

type UpdateCartItemIn struct {
	CartItemID uint `json:"cartItemId" binding:"required"`
	Quantity   int  `json:"quantity"`
}

func (s *CartService) Get(customerID uint) (*CartView, error) {
	c, err := s.Repo.GetCartWithItems(s.DB, customerID)
	if err != nil {
		return nil, err
	}
	return mapCartView(c), nil
}

// AddItem merges into an existing line when (food, customizations)
// match, otherwise opens a new line with the food's current price as
// the snapshot. Item write and total recompute commit together.
func (s *CartService) AddItem(actor Principal, in *AddCartItemIn) (*CartView, error) {
	food, err := s.FoodRepo.FindByID(in.FoodID)
	if err != nil {
		return nil, err
	}
	// TODO: decide whether unavailable foods should be rejected here;
	// today they can still be added.

	key := entity.CustomizationKey(in.Customizations)

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.Repo.GetCartWithItems(tx, actor.ID)
		if err != nil {
			return err
		}

		line, err := s.Repo.FindMergeLine(tx, cart.ID, food.ID, key)
		if err != nil {
			return err
		}
		if line != nil {
			line.Quantity += in.Quantity
			line.LineTotal = LineTotal(line.Quantity, line.UnitPrice)
			if err := s.Repo.SaveItem(tx, line); err != nil {
				return err
			}
		} else {
			line = &entity.CartItem{
				CartID:         cart.ID,
				FoodID:         food.ID,
				Quantity:       in.Quantity,
				UnitPrice:      food.Price,
				LineTotal:      LineTotal(in.Quantity, food.Price),
				Customizations: in.Customizations,
				CustomKey:      key,
			}
			if err := s.Repo.CreateItem(tx, line); err != nil {
				return err
			}
		}

		return s.recomputeTotal(tx, cart)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": actor.ID,
		"food_id":     food.ID,
		"quantity":    in.Quantity,
	}).Info("cart item added")
	return s.Get(actor.ID)
}

// UpdateQuantity replaces a line's quantity; zero or less removes the
// line. Strictly the cart's own customer: carts are personal, so not
// even an admin gets the override here.
func (s *CartService) UpdateQuantity(actor Principal, in *UpdateCartItemIn) (*CartView, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		item, err := s.Repo.FindItemWithCart(tx, in.CartItemID)
		if err != nil {
			return err
		}
		if err := s.requireOwnLine(actor, item); err != nil {
			return err
		}
		cart := item.Cart

		if in.Quantity <= 0 {
			if err := s.Repo.DeleteItem(tx, item.ID); err != nil {
				return err
			}
		} else {
			item.Quantity = in.Quantity
			item.LineTotal = LineTotal(in.Quantity, item.UnitPrice)
			if err := s.Repo.SaveItem(tx, item); err != nil {
				return err
			}
		}

		return s.recomputeTotal(tx, &cart)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(actor.ID)
}

func (s *CartService) RemoveItem(actor Principal, itemID uint) (*CartView, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		item, err := s.Repo.FindItemWithCart(tx, itemID)
		if err != nil {
			return err
		}
		if err := s.requireOwnLine(actor, item); err != nil {
			return err
		}
		cart := item.Cart
		if err := s.Repo.DeleteItem(tx, item.ID); err != nil {
			return err
		}
		return s.recomputeTotal(tx, &cart)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(actor.ID)
}

func (s *CartService) Clear(actor Principal) (*CartView, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.Repo.GetCartWithItems(tx, actor.ID)
		if err != nil {
			return err
		}
		if err := s.Repo.DeleteItems(tx, cart.ID); err != nil {
			return err
		}
		return s.Repo.CommitTotal(tx, cart, 0)
	})
	if err != nil {
		return nil, err
	}
	logrus.WithField("customer_id", actor.ID).Info("cart cleared")
	return s.Get(actor.ID)
}

func (s *CartService) requireOwnLine(actor Principal, item *entity.CartItem) error {
	if item.Cart.CustomerID != actor.ID {
		logrus.WithFields(logrus.Fields{
			"actor_id":     actor.ID,
			"cart_item_id": item.ID,
		}).Warn("access denied")
		return fmt.Errorf("%w: cart item %d does not belong to user %d",
			apperr.ErrAccessDenied, item.ID, actor.ID)
	}
	return nil
}

// recomputeTotal re-reads every line and commits the sum behind the
// cart's version guard; the stored total is never trusted as a cache.
func (s *CartService) recomputeTotal(tx *gorm.DB, cart *entity.Cart) error {
	items, err := s.Repo.ItemsForTotal(tx, cart.ID)
	if err != nil {
		return err
	}
	return s.Repo.CommitTotal(tx, cart, CartTotal(items))
}
