package repository

import (
	"strings"

	"dushanbe-eats/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// List returns active restaurants filtered by exact city, optional exact
// cuisine and optional case-insensitive substring on name/description.
// Ordered by rating DESC, name ASC so the result is deterministic.
func (r *RestaurantRepository) List(city, cuisine, search string) ([]entity.Restaurant, error) {
	q := r.DB.Model(&entity.Restaurant{}).Where("is_active = ?", true)
	if city != "" {
		q = q.Where("city = ?", city)
	}
	if cuisine != "" {
		q = q.Where("cuisine_type = ?", cuisine)
	}
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var out []entity.Restaurant
	err := q.Order("rating DESC").Order("name ASC").Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindByIDs(ids []uint) ([]entity.Restaurant, error) {
	if len(ids) == 0 {
		return []entity.Restaurant{}, nil
	}
	var out []entity.Restaurant
	err := r.DB.Where("id IN ?", ids).Order("rating DESC").Order("name ASC").Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) Create(tx *gorm.DB, rest *entity.Restaurant) error {
	return tx.Create(rest).Error
}

func (r *RestaurantRepository) Update(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}
