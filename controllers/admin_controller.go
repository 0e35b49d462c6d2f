package controllers

import (
	"dushanbe-eats/pkg/resp"
	"dushanbe-eats/repository"
	"dushanbe-eats/services"

	"github.com/gin-gonic/gin"
)

// AdminController is the back-office surface shared by admins and
// restaurant owners; scoping happens in the service.
type AdminController struct {
	Svc   *services.OrderService
	Users *repository.UserRepository
}

func NewAdminController(s *services.OrderService, users *repository.UserRepository) *AdminController {
	return &AdminController{Svc: s, Users: users}
}

// GET /api/admin/orders
func (h *AdminController) Orders(c *gin.Context) {
	actor := currentActor(c, h.Users)
	if actor == nil {
		return
	}

	orders, err := h.Svc.ListForOperator(actor)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/admin/analytics
func (h *AdminController) Analytics(c *gin.Context) {
	actor := currentActor(c, h.Users)
	if actor == nil {
		return
	}

	analytics, err := h.Svc.AnalyticsForOperator(actor)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, analytics)
}
