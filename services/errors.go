package services

import "errors"

// Business-rule failures are returned synchronously and surfaced at the
// boundary; none are fatal and a failed mutation leaves prior state intact.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrUnavailable        = errors.New("menu item is not available")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrRestaurantConflict = errors.New("cart belongs to another restaurant")
	ErrConflict           = errors.New("order status changed concurrently")
	ErrValidation         = errors.New("validation failed")
	ErrAlreadyPaid        = errors.New("order is already paid")
	ErrPollTimeout        = errors.New("payment status poll timed out")
)
