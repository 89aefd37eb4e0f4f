package services

import (
	"time"

	"github.com/campo22/food-delivery-app/entity"
)

// Read-side projections. These never carry back-references to parent
// aggregates, so there is nothing cyclic to suppress at serialization
// time.

type UserRef struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

type RestaurantRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type FoodRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type AddressView struct {
	ID     uint   `json:"id"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
}

type CartItemView struct {
	ID             uint     `json:"id"`
	Food           FoodRef  `json:"food"`
	Quantity       int      `json:"quantity"`
	Customizations []string `json:"customizations"`
	UnitPrice      int64    `json:"unitPrice"`
	LineTotal      int64    `json:"lineTotal"`
}

type CartView struct {
	ID         uint           `json:"id"`
	CustomerID uint           `json:"customerId"`
	Items      []CartItemView `json:"items"`
	Total      int64          `json:"total"`
}

type OrderItemView struct {
	ID             uint     `json:"id"`
	Food           FoodRef  `json:"food"`
	Quantity       int      `json:"quantity"`
	Customizations []string `json:"customizations"`
	UnitPrice      int64    `json:"unitPrice"`
	LineTotal      int64    `json:"lineTotal"`
}

type OrderView struct {
	ID              uint               `json:"id"`
	Customer        UserRef            `json:"customer"`
	Restaurant      RestaurantRef      `json:"restaurant"`
	Status          entity.OrderStatus `json:"status"`
	TotalAmount     int64              `json:"totalAmount"`
	TotalItemCount  int                `json:"totalItemCount"`
	CreatedAt       time.Time          `json:"createdAt"`
	DeliveryAddress AddressView        `json:"deliveryAddress"`
	Items           []OrderItemView    `json:"items"`
}

type RestaurantView struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CuisineType string   `json:"cuisineType"`
	Address     string   `json:"address"`
	Images      []string `json:"images"`
	Open        bool     `json:"open"`
	OwnerID     uint     `json:"ownerId"`
}

type FavoriteView struct {
	RestaurantID uint     `json:"restaurantId"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Images       []string `json:"images"`
}

func mapCartView(c *entity.Cart) *CartView {
	items := make([]CartItemView, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, CartItemView{
			ID:             it.ID,
			Food:           FoodRef{ID: it.FoodID, Name: it.Food.Name},
			Quantity:       it.Quantity,
			Customizations: it.Customizations,
			UnitPrice:      it.UnitPrice,
			LineTotal:      it.LineTotal,
		})
	}
	return &CartView{ID: c.ID, CustomerID: c.CustomerID, Items: items, Total: c.Total}
}

func mapOrderView(o *entity.Order) *OrderView {
	items := make([]OrderItemView, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemView{
			ID:             it.ID,
			Food:           FoodRef{ID: it.FoodID, Name: it.Food.Name},
			Quantity:       it.Quantity,
			Customizations: it.Customizations,
			UnitPrice:      it.UnitPrice,
			LineTotal:      it.LineTotal,
		})
	}
	return &OrderView{
		ID:             o.ID,
		Customer:       UserRef{ID: o.CustomerID, Email: o.Customer.Email},
		Restaurant:     RestaurantRef{ID: o.RestaurantID, Name: o.Restaurant.Name},
		Status:         o.Status,
		TotalAmount:    o.TotalAmount,
		TotalItemCount: o.TotalItemCount,
		CreatedAt:      o.CreatedAt,
		DeliveryAddress: AddressView{
			ID:     o.DeliveryAddress.ID,
			Street: o.DeliveryAddress.Street,
			City:   o.DeliveryAddress.City,
			State:  o.DeliveryAddress.State,
		},
		Items: items,
	}
}

func mapRestaurantView(r *entity.Restaurant) *RestaurantView {
	return &RestaurantView{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CuisineType: r.CuisineType,
		Address:     r.Address,
		Images:      r.Images,
		Open:        r.Open,
		OwnerID:     r.OwnerID,
	}
}
