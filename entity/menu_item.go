package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	RestaurantID uint       `gorm:"index" json:"restaurant_id"`
	Restaurant   Restaurant `json:"-"`

	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`

	// Unavailable items stay listed so the UI can render a disabled state.
	IsAvailable  bool `gorm:"not null;default:true" json:"is_available"`
	IsVegetarian bool `gorm:"not null;default:false" json:"is_vegetarian"`
	IsSpicy      bool `gorm:"not null;default:false" json:"is_spicy"`
}
