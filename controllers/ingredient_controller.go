package controllers

import (
	"strconv"

	"github.com/campo22/food-delivery-app/pkg/resp"
	"github.com/campo22/food-delivery-app/services"
	"github.com/campo22/food-delivery-app/utils"
	"github.com/gin-gonic/gin"
)

type IngredientController struct{ Svc *services.IngredientService }

func NewIngredientController(s *services.IngredientService) *IngredientController {
	return &IngredientController{Svc: s}
}

// POST /partner/ingredient-categories
func (h *IngredientController) CreateCategory(c *gin.Context) {
	actor := utils.CurrentPrincipal(c)
	var req services.IngredientCategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.CreateCategory(actor, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, cat)
}

// POST /partner/ingredients
func (h *IngredientController) CreateItem(c *gin.Context) {
	actor := utils.CurrentPrincipal(c)
	var req services.IngredientItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.CreateItem(actor, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /partner/ingredients/:id/stock
func (h *IngredientController) ToggleStock(c *gin.Context) {
	actor := utils.CurrentPrincipal(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid ingredient id")
		return
	}
	item, err := h.Svc.ToggleStock(actor, uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// GET /partner/restaurants/:id/ingredients
func (h *IngredientController) ListByRestaurant(c *gin.Context) {
	actor := utils.CurrentPrincipal(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	items, err := h.Svc.ListByRestaurant(actor, uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /partner/restaurants/:id/ingredient-categories
func (h *IngredientController) ListCategories(c *gin.Context) {
	actor := utils.CurrentPrincipal(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	cats, err := h.Svc.ListCategories(actor, uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cats)
}
