package services

import (
	"errors"

	"dushanbe-eats/entity"
	"dushanbe-eats/repository"

	"gorm.io/gorm"
)

type FavoriteService struct {
	Favorites   *repository.FavoriteRepository
	Restaurants *repository.RestaurantRepository
}

func NewFavoriteService(fr *repository.FavoriteRepository, rr *repository.RestaurantRepository) *FavoriteService {
	return &FavoriteService{Favorites: fr, Restaurants: rr}
}

// List returns the user's favorite restaurants.
func (s *FavoriteService) List(userID uint) ([]entity.Restaurant, error) {
	ids, err := s.Favorites.RestaurantIDs(userID)
	if err != nil {
		return nil, err
	}
	return s.Restaurants.FindByIDs(ids)
}

// Add is idempotent; re-adding an existing favorite succeeds quietly.
func (s *FavoriteService) Add(userID, restaurantID uint) error {
	if _, err := s.Restaurants.FindByID(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Favorites.Add(userID, restaurantID)
}

// Remove is idempotent; removing a missing favorite succeeds quietly.
func (s *FavoriteService) Remove(userID, restaurantID uint) error {
	return s.Favorites.Remove(userID, restaurantID)
}

func (s *FavoriteService) Check(userID, restaurantID uint) (bool, error) {
	return s.Favorites.Exists(userID, restaurantID)
}
