package controllers

import (
	"dushanbe-eats/pkg/resp"
	"dushanbe-eats/services"
	"dushanbe-eats/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Svc: s}
}

// GET /api/cart
func (h *CartController) Get(c *gin.Context) {
	cart, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /api/cart/add
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := h.Svc.Add(utils.CurrentUserID(c), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /api/cart/update
func (h *CartController) Update(c *gin.Context) {
	var req struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Quantity   int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := h.Svc.SetQuantity(utils.CurrentUserID(c), req.MenuItemID, req.Quantity)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /api/cart/clear
func (h *CartController) Clear(c *gin.Context) {
	cart, err := h.Svc.Clear(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}
