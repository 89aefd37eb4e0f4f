package controllers

import (
	"github.com/campo22/food-delivery-app/configs"
	"github.com/campo22/food-delivery-app/pkg/resp"
	"github.com/campo22/food-delivery-app/services"
	"github.com/campo22/food-delivery-app/utils"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Svc *services.AuthService
	Cfg *configs.Config
}

func NewAuthController(s *services.AuthService, cfg *configs.Config) *AuthController {
	return &AuthController{Svc: s, Cfg: cfg}
}

// POST /auth/register
func (h *AuthController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := h.Svc.Register(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	token, err := utils.GenerateToken(user, h.Cfg.JWTSecret, h.Cfg.JWTTTL)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"token": token, "user": gin.H{"id": user.ID, "email": user.Email, "role": user.Role}})
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req services.LoginIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := h.Svc.Login(&req)
	if err != nil {
		resp.Unauthorized(c, "bad credentials")
		return
	}
	token, err := utils.GenerateToken(user, h.Cfg.JWTSecret, h.Cfg.JWTTTL)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": gin.H{"id": user.ID, "email": user.Email, "role": user.Role}})
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	actor := utils.CurrentPrincipal(c)
	user, err := h.Svc.Profile(actor)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}
