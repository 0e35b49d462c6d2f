package entity

import (
	"gorm.io/gorm"
)

// OrderItem carries the name and unit price captured at order time,
// independent of later menu changes.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"-"`
	Order   Order `json:"-"`

	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}
