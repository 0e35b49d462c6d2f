package controllers

import (
	"errors"

	"dushanbe-eats/pkg/resp"
	"dushanbe-eats/services"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps the service error taxonomy onto HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrRestaurantConflict),
		errors.Is(err, services.ErrConflict):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		resp.UnprocessableEntity(c, err.Error())
	case errors.Is(err, services.ErrUnavailable),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrAlreadyPaid),
		errors.Is(err, services.ErrValidation):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
