package controllers

import (
	"dushanbe-eats/pkg/resp"
	"dushanbe-eats/services"
	"dushanbe-eats/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Svc: s}
}

// POST /api/auth/register
func (h *AuthController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, token, err := h.Svc.Register(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, gin.H{"user": user, "token": token})
}

// POST /api/auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req struct {
		EmailOrPhone string `json:"email_or_phone" binding:"required"`
		Password     string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, token, err := h.Svc.Login(req.EmailOrPhone, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	resp.OK(c, gin.H{"user": user, "token": token})
}

// GET /api/auth/me
func (h *AuthController) Me(c *gin.Context) {
	user, err := h.Svc.Profile(utils.CurrentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, user)
}

// POST /api/auth/logout — tokens are stateless, logout is client-side.
func (h *AuthController) Logout(c *gin.Context) {
	resp.OK(c, gin.H{"message": "logged out"})
}
