package services

import (
	"errors"
	"fmt"

	"dushanbe-eats/entity"
	"dushanbe-eats/repository"

	"gorm.io/gorm"
)

// Cities is the fixed city list the catalog is scoped by.
var Cities = []string{"Душанбе", "Худжанд", "Курган-Тюбе", "Куляб"}

type CatalogService struct {
	DB          *gorm.DB
	Restaurants *repository.RestaurantRepository
	Menus       *repository.MenuRepository
	Users       *repository.UserRepository
}

func NewCatalogService(db *gorm.DB, rr *repository.RestaurantRepository, mr *repository.MenuRepository, ur *repository.UserRepository) *CatalogService {
	return &CatalogService{DB: db, Restaurants: rr, Menus: mr, Users: ur}
}

// ----- Restaurants -----

func (s *CatalogService) ListRestaurants(city, cuisine, search string) ([]entity.Restaurant, error) {
	return s.Restaurants.List(city, cuisine, search)
}

func (s *CatalogService) GetRestaurant(id uint) (*entity.Restaurant, error) {
	r, err := s.Restaurants.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

type RestaurantIn struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	CuisineType  string  `json:"cuisine_type" binding:"required"`
	Address      string  `json:"address"`
	City         string  `json:"city" binding:"required"`
	ImageURL     string  `json:"image_url"`
	Rating       float64 `json:"rating"`
	DeliveryTime string  `json:"delivery_time"`
	MinOrder     float64 `json:"min_order"`
	DeliveryFee  float64 `json:"delivery_fee" binding:"min=0"`
	IsActive     *bool   `json:"is_active"`
}

// CreateRestaurant registers a new restaurant and attaches the creator as
// its owner when they are not an admin.
func (s *CatalogService) CreateRestaurant(actor *entity.User, in *RestaurantIn) (*entity.Restaurant, error) {
	if !CanViewBackoffice(actor) {
		return nil, ErrForbidden
	}

	rest := restaurantFromInput(in)
	rest.OwnerID = &actor.ID

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Restaurants.Create(tx, rest); err != nil {
			return err
		}
		return s.Users.AttachRestaurant(tx, actor.ID, rest.ID)
	})
	if err != nil {
		return nil, err
	}
	return rest, nil
}

func (s *CatalogService) UpdateRestaurant(actor *entity.User, id uint, in *RestaurantIn) (*entity.Restaurant, error) {
	rest, err := s.GetRestaurant(id)
	if err != nil {
		return nil, err
	}
	if !CanManageRestaurant(actor, rest.ID) {
		return nil, ErrForbidden
	}

	updated := restaurantFromInput(in)
	updated.ID = rest.ID
	updated.CreatedAt = rest.CreatedAt
	updated.OwnerID = rest.OwnerID
	if err := s.Restaurants.Update(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func restaurantFromInput(in *RestaurantIn) *entity.Restaurant {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	rating := in.Rating
	if rating == 0 {
		rating = 4.5
	}
	return &entity.Restaurant{
		Name:         in.Name,
		Description:  in.Description,
		CuisineType:  in.CuisineType,
		Address:      in.Address,
		City:         in.City,
		ImageURL:     in.ImageURL,
		Rating:       rating,
		DeliveryTime: in.DeliveryTime,
		MinOrder:     in.MinOrder,
		DeliveryFee:  in.DeliveryFee,
		IsActive:     active,
	}
}

// ----- Menu -----

func (s *CatalogService) ListMenu(restaurantID uint, category string) ([]entity.MenuItem, error) {
	if _, err := s.GetRestaurant(restaurantID); err != nil {
		return nil, err
	}
	return s.Menus.ListForRestaurant(restaurantID, category)
}

func (s *CatalogService) MenuCategories(restaurantID uint) ([]string, error) {
	return s.Menus.Categories(restaurantID)
}

type MenuItemIn struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Category     string  `json:"category" binding:"required"`
	ImageURL     string  `json:"image_url"`
	IsAvailable  *bool   `json:"is_available"`
	IsVegetarian bool    `json:"is_vegetarian"`
	IsSpicy      bool    `json:"is_spicy"`
}

type CreateMenuItemIn struct {
	MenuItemIn
	RestaurantID uint `json:"restaurant_id" binding:"required"`
}

func (s *CatalogService) CreateMenuItem(actor *entity.User, in *CreateMenuItemIn) (*entity.MenuItem, error) {
	if in.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	if _, err := s.GetRestaurant(in.RestaurantID); err != nil {
		return nil, err
	}
	if !CanManageRestaurant(actor, in.RestaurantID) {
		return nil, ErrForbidden
	}

	item := &entity.MenuItem{RestaurantID: in.RestaurantID}
	applyMenuInput(item, &in.MenuItemIn)
	if err := s.Menus.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CatalogService) UpdateMenuItem(actor *entity.User, itemID uint, in *MenuItemIn) (*entity.MenuItem, error) {
	if in.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	item, err := s.menuItem(itemID)
	if err != nil {
		return nil, err
	}
	if !CanManageRestaurant(actor, item.RestaurantID) {
		return nil, ErrForbidden
	}

	applyMenuInput(item, in)
	if err := s.Menus.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CatalogService) DeleteMenuItem(actor *entity.User, itemID uint) error {
	item, err := s.menuItem(itemID)
	if err != nil {
		return err
	}
	if !CanManageRestaurant(actor, item.RestaurantID) {
		return ErrForbidden
	}
	return s.Menus.Delete(item.ID)
}

func (s *CatalogService) menuItem(id uint) (*entity.MenuItem, error) {
	item, err := s.Menus.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func applyMenuInput(item *entity.MenuItem, in *MenuItemIn) {
	item.Name = in.Name
	item.Description = in.Description
	item.Price = in.Price
	item.Category = in.Category
	item.ImageURL = in.ImageURL
	item.IsAvailable = in.IsAvailable == nil || *in.IsAvailable
	item.IsVegetarian = in.IsVegetarian
	item.IsSpicy = in.IsSpicy
}
