package services

import (
	"context"
	"errors"
	"fmt"

	"dushanbe-eats/entity"
	"dushanbe-eats/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB          *gorm.DB
	Orders      *repository.OrderRepository
	Carts       *repository.CartRepository
	Restaurants *repository.RestaurantRepository
	Users       *repository.UserRepository
	Locks       *UserLocks
	Events      *EventFanout
}

func NewOrderService(db *gorm.DB, or *repository.OrderRepository, cr *repository.CartRepository, rr *repository.RestaurantRepository, ur *repository.UserRepository, locks *UserLocks, events *EventFanout) *OrderService {
	return &OrderService{
		DB: db, Orders: or, Carts: cr, Restaurants: rr, Users: ur,
		Locks: locks, Events: events,
	}
}

type CheckoutIn struct {
	DeliveryAddress string `json:"delivery_address" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Comment         string `json:"comment"`
	PaymentMethod   string `json:"payment_method" binding:"omitempty,oneof=cash card"`
}

// Checkout snapshots the user's cart into an immutable order and clears the
// cart in the same transaction, so the order and a non-empty cart never
// coexist.
func (s *OrderService) Checkout(ctx context.Context, user *entity.User, in *CheckoutIn) (*entity.Order, error) {
	unlock := s.Locks.Lock(user.ID)
	defer unlock()

	method := entity.PaymentMethod(in.PaymentMethod)
	if method == "" {
		method = entity.PaymentCash
	}
	if method != entity.PaymentCash && method != entity.PaymentCard {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, in.PaymentMethod)
	}

	var order *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.Carts.GetOrCreate(tx, user.ID)
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		rest, err := s.Restaurants.FindByID(cart.RestaurantID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var subtotal float64
		items := make([]entity.OrderItem, 0, len(cart.Items))
		for _, it := range cart.Items {
			subtotal += it.Price * float64(it.Quantity)
			items = append(items, entity.OrderItem{
				MenuItemID: it.MenuItemID,
				Name:       it.Name,
				Price:      it.Price,
				Quantity:   it.Quantity,
			})
		}

		order = &entity.Order{
			UserID:          user.ID,
			RestaurantID:    rest.ID,
			RestaurantName:  rest.Name,
			Items:           items,
			Subtotal:        subtotal,
			DeliveryFee:     rest.DeliveryFee,
			Total:           subtotal + rest.DeliveryFee,
			Status:          entity.StatusPending,
			DeliveryAddress: in.DeliveryAddress,
			Phone:           in.Phone,
			Comment:         in.Comment,
			City:            user.City,
			PaymentMethod:   method,
			PaymentStatus:   entity.PaymentUnpaid,
		}
		if err := s.Orders.Create(tx, order); err != nil {
			return err
		}

		return s.Carts.Clear(tx, user.ID)
	})
	if err != nil {
		return nil, err
	}

	s.Events.Publish(ctx, eventFromOrder(EventOrderCreated, order))
	return order, nil
}

// ListForUser returns the customer's own orders, newest first.
func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Orders.ListForUser(userID, 100)
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Orders.GetForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

// ListForOperator returns all orders for an admin, or the actor's own
// restaurant's orders for an owner. Newest first.
func (s *OrderService) ListForOperator(actor *entity.User) ([]entity.Order, error) {
	if !CanViewBackoffice(actor) {
		return nil, ErrForbidden
	}
	if actor.IsAdmin {
		return s.Orders.ListAll(100)
	}
	if actor.RestaurantID == nil {
		return []entity.Order{}, nil
	}
	return s.Orders.ListForRestaurant(*actor.RestaurantID, 100)
}

// Analytics summarizes orders visible to the operator.
type Analytics struct {
	TotalOrders     int            `json:"total_orders"`
	TotalRevenue    float64        `json:"total_revenue"`
	CompletedOrders int            `json:"completed_orders"`
	PendingOrders   int            `json:"pending_orders"`
	StatusCounts    map[string]int `json:"status_counts"`
}

func (s *OrderService) AnalyticsForOperator(actor *entity.User) (*Analytics, error) {
	orders, err := s.ListForOperator(actor)
	if err != nil {
		return nil, err
	}

	out := &Analytics{StatusCounts: make(map[string]int)}
	for _, o := range orders {
		out.TotalOrders++
		out.TotalRevenue += o.Total
		out.StatusCounts[string(o.Status)]++
		switch o.Status {
		case entity.StatusDelivered:
			out.CompletedOrders++
		case entity.StatusPending, entity.StatusConfirmed,
			entity.StatusPreparing, entity.StatusDelivering:
			out.PendingOrders++
		}
	}
	return out, nil
}
