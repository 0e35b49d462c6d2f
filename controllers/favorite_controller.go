package controllers

import (
	"strconv"

	"dushanbe-eats/pkg/resp"
	"dushanbe-eats/services"
	"dushanbe-eats/utils"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct{ Svc *services.FavoriteService }

func NewFavoriteController(s *services.FavoriteService) *FavoriteController {
	return &FavoriteController{Svc: s}
}

// GET /api/favorites
func (h *FavoriteController) List(c *gin.Context) {
	rests, err := h.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rests)
}

// POST /api/favorites/:restaurantId
func (h *FavoriteController) Add(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("restaurantId"))
	if err := h.Svc.Add(utils.CurrentUserID(c), uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "added to favorites"})
}

// DELETE /api/favorites/:restaurantId
func (h *FavoriteController) Remove(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("restaurantId"))
	if err := h.Svc.Remove(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "removed from favorites"})
}

// GET /api/favorites/check/:restaurantId
func (h *FavoriteController) Check(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("restaurantId"))
	isFav, err := h.Svc.Check(utils.CurrentUserID(c), uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"is_favorite": isFav})
}
