package repository

import (
	"errors"

	"dushanbe-eats/entity"

	"gorm.io/gorm"
)

type FavoriteRepository struct{ DB *gorm.DB }

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

func (r *FavoriteRepository) Exists(userID, restaurantID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Favorite{}).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Count(&count).Error
	return count > 0, err
}

// Add is idempotent: a duplicate membership is not an error.
func (r *FavoriteRepository) Add(userID, restaurantID uint) error {
	var existing entity.Favorite
	err := r.DB.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.DB.Create(&entity.Favorite{UserID: userID, RestaurantID: restaurantID}).Error
}

// Remove is idempotent: deleting a missing membership is not an error.
func (r *FavoriteRepository) Remove(userID, restaurantID uint) error {
	return r.DB.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&entity.Favorite{}).Error
}

func (r *FavoriteRepository) RestaurantIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&entity.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("restaurant_id", &ids).Error
	return ids, err
}
