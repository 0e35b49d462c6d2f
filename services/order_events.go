package services

import (
	"context"
	"log"
	"time"

	"dushanbe-eats/entity"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderEvent is the message fanned out whenever an order is created or its
// status changes.
type OrderEvent struct {
	Type           string               `json:"type"`
	OrderID        uint                 `json:"order_id"`
	RestaurantID   uint                 `json:"restaurant_id"`
	RestaurantName string               `json:"restaurant_name"`
	Status         entity.Status        `json:"status"`
	PaymentStatus  entity.PaymentStatus `json:"payment_status"`
	Total          float64              `json:"total"`
	OccurredAt     time.Time            `json:"occurred_at"`
}

// EventSink receives order events. Implementations: the websocket feed, the
// AMQP publisher and the Telegram notifier.
type EventSink interface {
	PublishOrderEvent(ctx context.Context, ev OrderEvent) error
}

// EventFanout delivers events to every sink. Sink failures are logged and
// never fail the originating request.
type EventFanout struct {
	sinks []EventSink
}

func NewEventFanout(sinks ...EventSink) *EventFanout {
	return &EventFanout{sinks: sinks}
}

func (f *EventFanout) AddSink(s EventSink) {
	f.sinks = append(f.sinks, s)
}

func (f *EventFanout) Publish(ctx context.Context, ev OrderEvent) {
	if f == nil {
		return
	}
	for _, s := range f.sinks {
		if err := s.PublishOrderEvent(ctx, ev); err != nil {
			log.Printf("order event sink failed: %v", err)
		}
	}
}

func eventFromOrder(eventType string, o *entity.Order) OrderEvent {
	return OrderEvent{
		Type:           eventType,
		OrderID:        o.ID,
		RestaurantID:   o.RestaurantID,
		RestaurantName: o.RestaurantName,
		Status:         o.Status,
		PaymentStatus:  o.PaymentStatus,
		Total:          o.Total,
		OccurredAt:     time.Now().UTC(),
	}
}
