package entity

import (
	"gorm.io/gorm"
)

// Favorite is a (user, restaurant) membership; add and remove are idempotent.
type Favorite struct {
	gorm.Model
	UserID       uint `gorm:"uniqueIndex:idx_fav_user_restaurant" json:"user_id"`
	RestaurantID uint `gorm:"uniqueIndex:idx_fav_user_restaurant" json:"restaurant_id"`

	User       User       `json:"-"`
	Restaurant Restaurant `json:"-"`
}
