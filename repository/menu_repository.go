package repository

import (
	"dushanbe-eats/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// ListForRestaurant returns every item, unavailable ones included, so the
// consuming layer can render a disabled state.
func (r *MenuRepository) ListForRestaurant(restaurantID uint, category string) ([]entity.MenuItem, error) {
	q := r.DB.Where("restaurant_id = ?", restaurantID)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var out []entity.MenuItem
	err := q.Order("category ASC").Order("name ASC").Find(&out).Error
	return out, err
}

func (r *MenuRepository) Categories(restaurantID uint) ([]string, error) {
	var out []string
	err := r.DB.Model(&entity.MenuItem{}).
		Distinct("category").
		Where("restaurant_id = ?", restaurantID).
		Order("category ASC").
		Pluck("category", &out).Error
	return out, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Update(m *entity.MenuItem) error {
	return r.DB.Save(m).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}
