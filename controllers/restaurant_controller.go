package controllers

import (
	"strconv"

	"dushanbe-eats/pkg/resp"
	"dushanbe-eats/repository"
	"dushanbe-eats/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Svc   *services.CatalogService
	Users *repository.UserRepository
}

func NewRestaurantController(s *services.CatalogService, users *repository.UserRepository) *RestaurantController {
	return &RestaurantController{Svc: s, Users: users}
}

// GET /api/cities
func (h *RestaurantController) Cities(c *gin.Context) {
	resp.OK(c, services.Cities)
}

// GET /api/restaurants?city=&cuisine=&search=
func (h *RestaurantController) List(c *gin.Context) {
	rests, err := h.Svc.ListRestaurants(c.Query("city"), c.Query("cuisine"), c.Query("search"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rests)
}

// GET /api/restaurants/:id
func (h *RestaurantController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	rest, err := h.Svc.GetRestaurant(uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, rest)
}

// POST /api/restaurants
func (h *RestaurantController) Create(c *gin.Context) {
	actor := currentActor(c, h.Users)
	if actor == nil {
		return
	}

	var req services.RestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := h.Svc.CreateRestaurant(actor, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, rest)
}

// PUT /api/restaurants/:id
func (h *RestaurantController) Update(c *gin.Context) {
	actor := currentActor(c, h.Users)
	if actor == nil {
		return
	}

	id, _ := strconv.Atoi(c.Param("id"))
	var req services.RestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := h.Svc.UpdateRestaurant(actor, uint(id), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, rest)
}
