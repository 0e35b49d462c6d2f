package controllers

import (
	"strconv"

	"dushanbe-eats/entity"
	"dushanbe-eats/pkg/resp"
	"dushanbe-eats/repository"
	"dushanbe-eats/services"
	"dushanbe-eats/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc   *services.OrderService
	Users *repository.UserRepository
}

func NewOrderController(s *services.OrderService, users *repository.UserRepository) *OrderController {
	return &OrderController{Svc: s, Users: users}
}

// POST /api/orders
func (h *OrderController) Create(c *gin.Context) {
	actor := currentActor(c, h.Users)
	if actor == nil {
		return
	}

	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Checkout(c.Request.Context(), actor, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /api/orders
func (h *OrderController) ListForMe(c *gin.Context) {
	orders, err := h.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	order, err := h.Svc.DetailForUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, order)
}

// PUT /api/orders/:id/status
func (h *OrderController) UpdateStatus(c *gin.Context) {
	actor := currentActor(c, h.Users)
	if actor == nil {
		return
	}

	id, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		Status string `json:"status" binding:"required,orderstatus"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	target, ok := entity.ParseStatus(req.Status)
	if !ok {
		resp.BadRequest(c, "unknown status")
		return
	}

	order, err := h.Svc.Advance(c.Request.Context(), actor, uint(id), target)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, order)
}
