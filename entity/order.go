package entity

import (
	"gorm.io/gorm"
)

// Order is created from a cart snapshot at checkout. Line items are
// immutable; only Status and PaymentStatus transition afterwards.
type Order struct {
	gorm.Model
	UserID uint `gorm:"index" json:"user_id"`
	User   User `json:"-"`

	RestaurantID   uint       `gorm:"index" json:"restaurant_id"`
	Restaurant     Restaurant `json:"-"`
	RestaurantName string     `json:"restaurant_name"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE;" json:"items"`

	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Total       float64 `json:"total"`

	Status Status `gorm:"size:20;not null;default:pending" json:"status"`

	DeliveryAddress string `json:"delivery_address"`
	Phone           string `json:"phone"`
	Comment         string `json:"comment,omitempty"`
	City            string `json:"city"`

	PaymentMethod    PaymentMethod `gorm:"size:10;not null" json:"payment_method"`
	PaymentStatus    PaymentStatus `gorm:"size:10;not null;default:unpaid" json:"payment_status"`
	PaymentSessionID string        `gorm:"index" json:"payment_session_id,omitempty"`
}
