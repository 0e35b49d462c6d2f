package controllers

import (
	"strconv"

	"dushanbe-eats/pkg/resp"
	"dushanbe-eats/repository"
	"dushanbe-eats/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Svc   *services.CatalogService
	Users *repository.UserRepository
}

func NewMenuController(s *services.CatalogService, users *repository.UserRepository) *MenuController {
	return &MenuController{Svc: s, Users: users}
}

// GET /api/restaurants/:id/menu?category=
func (h *MenuController) List(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	items, err := h.Svc.ListMenu(uint(id), c.Query("category"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/menu-categories/:restaurantId
func (h *MenuController) Categories(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("restaurantId"))
	categories, err := h.Svc.MenuCategories(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, categories)
}

// POST /api/menu
func (h *MenuController) Create(c *gin.Context) {
	actor := currentActor(c, h.Users)
	if actor == nil {
		return
	}

	var req services.CreateMenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Svc.CreateMenuItem(actor, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /api/menu/:id
func (h *MenuController) Update(c *gin.Context) {
	actor := currentActor(c, h.Users)
	if actor == nil {
		return
	}

	id, _ := strconv.Atoi(c.Param("id"))
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Svc.UpdateMenuItem(actor, uint(id), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /api/menu/:id
func (h *MenuController) Delete(c *gin.Context) {
	actor := currentActor(c, h.Users)
	if actor == nil {
		return
	}

	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Svc.DeleteMenuItem(actor, uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}
