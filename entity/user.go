package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string  `json:"name"`
	Email    *string `gorm:"uniqueIndex" json:"email,omitempty"`
	Phone    *string `gorm:"uniqueIndex" json:"phone,omitempty"`
	Password string  `json:"-"`
	City     string  `json:"city"`

	// Role flags are set at registration/seeding and never change here.
	IsAdmin           bool  `gorm:"not null;default:false" json:"is_admin"`
	IsRestaurantOwner bool  `gorm:"not null;default:false" json:"is_restaurant_owner"`
	RestaurantID      *uint `json:"restaurant_id,omitempty"`

	Orders    []Order    `json:"-"`
	Favorites []Favorite `json:"-"`
}
