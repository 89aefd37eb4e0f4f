package controllers

import (
	"strconv"

	"github.com/campo22/food-delivery-app/pkg/resp"
	"github.com/campo22/food-delivery-app/services"
	"github.com/campo22/food-delivery-app/utils"
	"github.com/gin-gonic/gin"
)

type RestaurantController struct{ Svc *services.RestaurantService }

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /restaurants
func (h *RestaurantController) List(c *gin.Context) {
	if kw := c.Query("search"); kw != "" {
		rests, err := h.Svc.Search(kw)
		if err != nil {
			resp.Error(c, err)
			return
		}
		resp.OK(c, rests)
		return
	}
	rests, err := h.Svc.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rests)
}

// GET /restaurants/:id
func (h *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	rest, err := h.Svc.Detail(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rest)
}

// POST /partner/restaurants
func (h *RestaurantController) Create(c *gin.Context) {
	actor := utils.CurrentPrincipal(c)
	var req services.RestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := h.Svc.Create(actor, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, rest)
}

// PUT /partner/restaurants/:id
func (h *RestaurantController) Update(c *gin.Context) {
	actor := utils.CurrentPrincipal(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	var req services.RestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := h.Svc.Update(actor, uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rest)
}

// PUT /partner/restaurants/:id/status
func (h *RestaurantController) ToggleOpen(c *gin.Context) {
	actor := utils.CurrentPrincipal(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	rest, err := h.Svc.ToggleOpen(actor, uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rest)
}

// DELETE /partner/restaurants/:id
func (h *RestaurantController) Delete(c *gin.Context) {
	actor := utils.CurrentPrincipal(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	if err := h.Svc.Delete(actor, uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// GET /partner/restaurants/mine
func (h *RestaurantController) Mine(c *gin.Context) {
	actor := utils.CurrentPrincipal(c)
	rest, err := h.Svc.FindByOwner(actor)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rest)
}

// ===== favorites =====

// PUT /restaurants/:id/favorite
func (h *RestaurantController) AddFavorite(c *gin.Context) {
	actor := utils.CurrentPrincipal(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	fav, err := h.Svc.AddFavorite(actor, uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, fav)
}

// GET /profile/favorites
func (h *RestaurantController) ListFavorites(c *gin.Context) {
	actor := utils.CurrentPrincipal(c)
	favs, err := h.Svc.ListFavorites(actor)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, favs)
}
