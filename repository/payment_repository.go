package repository

import (
	"dushanbe-eats/entity"

	"gorm.io/gorm"
)

type PaymentRepository struct{ DB *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(t *entity.PaymentTransaction) error {
	return r.DB.Create(t).Error
}

func (r *PaymentRepository) FindBySession(sessionID string) (*entity.PaymentTransaction, error) {
	var t entity.PaymentTransaction
	if err := r.DB.Where("session_id = ?", sessionID).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PaymentRepository) UpdateStatus(sessionID, status, paymentStatus string) error {
	return r.DB.Model(&entity.PaymentTransaction{}).
		Where("session_id = ?", sessionID).
		Updates(map[string]any{
			"status":         status,
			"payment_status": paymentStatus,
		}).Error
}
