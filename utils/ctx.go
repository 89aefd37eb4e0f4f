package utils

import (
	"github.com/campo22/food-delivery-app/entity"
	"github.com/campo22/food-delivery-app/services"
	"github.com/gin-gonic/gin"
)

// CurrentPrincipal reads the actor the auth middleware stored on the
// request context. Zero value means unauthenticated.
func CurrentPrincipal(c *gin.Context) services.Principal {
	var p services.Principal
	if v, ok := c.Get("userId"); ok {
		if id, ok := v.(uint); ok {
			p.ID = id
		}
	}
	if v, ok := c.Get("role"); ok {
		if r, ok := v.(entity.Role); ok {
			p.Role = r
		}
	}
	if v, ok := c.Get("email"); ok {
		if e, ok := v.(string); ok {
			p.Email = e
		}
	}
	return p
}
