package repository

import (
	"errors"

	"dushanbe-eats/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetOrCreate returns the user's cart with its items, creating an empty
// unscoped cart on first access.
func (r *CartRepository) GetOrCreate(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).Preload("Items").First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := tx.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SetScope locks the cart to a restaurant.
func (r *CartRepository) SetScope(tx *gorm.DB, cartID uint, rest *entity.Restaurant) error {
	return tx.Model(&entity.Cart{}).Where("id = ?", cartID).
		Updates(map[string]any{
			"restaurant_id":   rest.ID,
			"restaurant_name": rest.Name,
		}).Error
}

// ResetScope detaches the cart from its restaurant, ready for a new one.
func (r *CartRepository) ResetScope(tx *gorm.DB, cartID uint) error {
	return tx.Model(&entity.Cart{}).Where("id = ?", cartID).
		Updates(map[string]any{
			"restaurant_id":   0,
			"restaurant_name": "",
			"total":           0,
		}).Error
}

func (r *CartRepository) SaveTotal(tx *gorm.DB, cartID uint, total float64) error {
	return tx.Model(&entity.Cart{}).Where("id = ?", cartID).
		Update("total", total).Error
}

func (r *CartRepository) CreateItem(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Create(item).Error
}

func (r *CartRepository) SaveItem(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Save(item).Error
}

func (r *CartRepository) DeleteItem(tx *gorm.DB, itemID uint) error {
	return tx.Delete(&entity.CartItem{}, itemID).Error
}

// Clear deletes all lines and resets the scope. No-op when the user has no
// cart yet.
func (r *CartRepository) Clear(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return r.ResetScope(tx, c.ID)
}
