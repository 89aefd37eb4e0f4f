package controllers

import (
	"strconv"

	"github.com/campo22/food-delivery-app/pkg/resp"
	"github.com/campo22/food-delivery-app/services"
	"github.com/campo22/food-delivery-app/utils"
	"github.com/gin-gonic/gin"
)

type CategoryController struct{ Svc *services.CategoryService }

func NewCategoryController(s *services.CategoryService) *CategoryController {
	return &CategoryController{Svc: s}
}

// POST /partner/categories
func (h *CategoryController) Create(c *gin.Context) {
	actor := utils.CurrentPrincipal(c)
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.Create(actor, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, cat)
}

// GET /restaurants/:id/categories
func (h *CategoryController) ListByRestaurant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	cats, err := h.Svc.ListByRestaurant(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cats)
}
