package entity

import (
	"gorm.io/gorm"
)

// PaymentTransaction records one hosted-checkout session for an order.
type PaymentTransaction struct {
	gorm.Model
	SessionID string `gorm:"uniqueIndex" json:"session_id"`
	ClientRef string `json:"client_ref"`

	UserID  uint `json:"user_id"`
	OrderID uint `gorm:"index" json:"order_id"`

	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`

	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}
