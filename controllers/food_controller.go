package controllers

import (
	"strconv"

	"github.com/campo22/food-delivery-app/pkg/resp"
	"github.com/campo22/food-delivery-app/repository"
	"github.com/campo22/food-delivery-app/services"
	"github.com/campo22/food-delivery-app/utils"
	"github.com/gin-gonic/gin"
)

type FoodController struct{ Svc *services.FoodService }

func NewFoodController(s *services.FoodService) *FoodController {
	return &FoodController{Svc: s}
}

// GET /restaurants/:id/foods?vegetarian=&available=&categoryId=
func (h *FoodController) ListByRestaurant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	filter := repository.FoodFilter{
		Vegetarian:    c.Query("vegetarian") == "true",
		AvailableOnly: c.Query("available") == "true",
	}
	if cid, err := strconv.ParseUint(c.Query("categoryId"), 10, 64); err == nil {
		filter.CategoryID = uint(cid)
	}
	foods, err := h.Svc.ListByRestaurant(uint(id), filter)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, foods)
}

// GET /foods/:id
func (h *FoodController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid food id")
		return
	}
	food, err := h.Svc.Detail(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, food)
}

// GET /foods/search?q=
func (h *FoodController) Search(c *gin.Context) {
	foods, err := h.Svc.Search(c.Query("q"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, foods)
}

// POST /partner/foods
func (h *FoodController) Create(c *gin.Context) {
	actor := utils.CurrentPrincipal(c)
	var req services.FoodIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	food, err := h.Svc.Create(actor, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, food)
}

// PUT /partner/foods/:id/availability
func (h *FoodController) ToggleAvailability(c *gin.Context) {
	actor := utils.CurrentPrincipal(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid food id")
		return
	}
	food, err := h.Svc.ToggleAvailability(actor, uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, food)
}

// DELETE /partner/foods/:id
func (h *FoodController) Delete(c *gin.Context) {
	actor := utils.CurrentPrincipal(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid food id")
		return
	}
	if err := h.Svc.Delete(actor, uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
