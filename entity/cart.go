package entity

import (
	"gorm.io/gorm"
)

// Cart is the single mutable order draft per user. All items belong to the
// restaurant the cart is scoped to; RestaurantID == 0 means unscoped (empty).
type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `json:"-"`

	RestaurantID   uint   `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	Total float64    `json:"total"`
}

// Recalc recomputes the stored total from the lines.
func (c *Cart) Recalc() {
	var total float64
	for _, it := range c.Items {
		total += it.Price * float64(it.Quantity)
	}
	c.Total = total
}
