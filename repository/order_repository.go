package repository

import (
	"dushanbe-eats/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) Get(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetByPaymentSession(sessionID string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("payment_session_id = ?", sessionID).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListForUser(userID uint, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListForRestaurant(restaurantID uint, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListAll(limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []entity.Order
	err := r.DB.Preload("Items").
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// UpdateStatusGuard applies a compare-and-swap on the current status so two
// racing operators cannot both win. Zero rows affected means the status read
// at decision time is stale.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.Status) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) SetPaymentSession(orderID uint, sessionID string) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("payment_session_id", sessionID).Error
}

// MarkPaidGuard flips payment_status unpaid → paid for the order bound to
// the session. Zero rows affected on a re-confirm, which callers treat as a
// no-op.
func (r *OrderRepository) MarkPaidGuard(sessionID string) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("payment_session_id = ? AND payment_status = ?", sessionID, entity.PaymentUnpaid).
		Update("payment_status", entity.PaymentPaid)
	return res.RowsAffected, res.Error
}
