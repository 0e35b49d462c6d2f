package controllers

import (
	"dushanbe-eats/entity"
	"dushanbe-eats/pkg/resp"
	"dushanbe-eats/repository"
	"dushanbe-eats/utils"

	"github.com/gin-gonic/gin"
)

// currentActor loads the authenticated user behind the request. Writes the
// 401 itself and returns nil when the identity cannot be resolved.
func currentActor(c *gin.Context, users *repository.UserRepository) *entity.User {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return nil
	}
	user, err := users.FindByID(uid)
	if err != nil {
		resp.Unauthorized(c, "unauthorized")
		return nil
	}
	return user
}
