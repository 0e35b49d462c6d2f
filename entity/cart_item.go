package entity

import (
	"gorm.io/gorm"
)

// CartItem snapshots the menu item's display fields and price at add time.
type CartItem struct {
	gorm.Model
	CartID uint `json:"-"`
	Cart   Cart `json:"-"`

	MenuItemID uint    `gorm:"index" json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	ImageURL   string  `json:"image_url"`
	Quantity   int     `json:"quantity"`
}
