package controllers

import (
	"strconv"

	"github.com/campo22/food-delivery-app/pkg/resp"
	"github.com/campo22/food-delivery-app/services"
	"github.com/campo22/food-delivery-app/utils"
	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Svc: s}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	actor := utils.CurrentPrincipal(c)
	cart, err := h.Svc.Get(actor.ID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	actor := utils.CurrentPrincipal(c)
	var req services.AddCartItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cart, err := h.Svc.AddItem(actor, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}

// PATCH /cart/items
func (h *CartController) UpdateQuantity(c *gin.Context) {
	actor := utils.CurrentPrincipal(c)
	var req services.UpdateCartItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cart, err := h.Svc.UpdateQuantity(actor, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /cart/items/:id
func (h *CartController) RemoveItem(c *gin.Context) {
	actor := utils.CurrentPrincipal(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	cart, err := h.Svc.RemoveItem(actor, uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	actor := utils.CurrentPrincipal(c)
	cart, err := h.Svc.Clear(actor)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}
