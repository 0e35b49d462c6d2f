package repository

import (
	"dushanbe-eats/entity"

	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByEmailOrPhone resolves a login identifier against either column.
func (r *UserRepository) FindByEmailOrPhone(identifier string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ? OR phone = ?", identifier, identifier).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByContact(email, phone *string) (int64, error) {
	q := r.DB.Model(&entity.User{})
	switch {
	case email != nil && phone != nil:
		q = q.Where("email = ? OR phone = ?", *email, *phone)
	case email != nil:
		q = q.Where("email = ?", *email)
	case phone != nil:
		q = q.Where("phone = ?", *phone)
	default:
		return 0, nil
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}

// AttachRestaurant marks the user as the owner of a restaurant.
func (r *UserRepository) AttachRestaurant(tx *gorm.DB, userID, restaurantID uint) error {
	return tx.Model(&entity.User{}).Where("id = ?", userID).
		Updates(map[string]any{
			"restaurant_id":       restaurantID,
			"is_restaurant_owner": true,
		}).Error
}
