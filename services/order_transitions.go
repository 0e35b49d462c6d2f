package services

import (
	"context"
	"errors"

	"dushanbe-eats/entity"

	"gorm.io/gorm"
)

// Advance moves an order one step along the lifecycle graph. Only an
// operator authorized over the order's restaurant may call it. The update
// is a compare-and-swap on the status read at decision time: a concurrent
// winner leaves this caller with ErrConflict instead of overwriting.
//
// Payment status is deliberately out of reach here; operators cannot mark
// an order paid.
func (s *OrderService) Advance(ctx context.Context, actor *entity.User, orderID uint, target entity.Status) (*entity.Order, error) {
	o, err := s.Orders.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !CanManageRestaurant(actor, o.RestaurantID) {
		return nil, ErrForbidden
	}
	if !o.Status.CanTransitionTo(target) {
		return nil, ErrInvalidTransition
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Orders.UpdateStatusGuard(tx, o.ID, o.Status, target)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.Status = target
	s.Events.Publish(ctx, eventFromOrder(EventOrderStatusChanged, o))
	return o, nil
}
