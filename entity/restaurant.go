package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	CuisineType  string  `json:"cuisine_type"`
	Address      string  `json:"address"`
	City         string  `gorm:"index" json:"city"`
	ImageURL     string  `json:"image_url"`
	Rating       float64 `json:"rating"`
	DeliveryTime string  `json:"delivery_time"`
	MinOrder     float64 `json:"min_order"`
	DeliveryFee  float64 `json:"delivery_fee"`
	IsActive     bool    `gorm:"not null;default:true" json:"is_active"`

	OwnerID *uint `json:"owner_id,omitempty"`

	MenuItems []MenuItem `json:"-"`
	Orders    []Order    `json:"-"`
}
