package services

import (
	"context"
	"fmt"

	"dushanbe-eats/pkg/events"
	"dushanbe-eats/pkg/notify"
)

// AMQPSink forwards order events to the RabbitMQ topic exchange with the
// event type as routing key.
type AMQPSink struct {
	Publisher *events.Publisher
}

func (s *AMQPSink) PublishOrderEvent(ctx context.Context, ev OrderEvent) error {
	return s.Publisher.Publish(ctx, ev.Type, ev)
}

// TelegramSink pushes a short operator message for new orders. Status
// churn would be noise in a chat, so only creations are forwarded.
type TelegramSink struct {
	Notifier *notify.TelegramNotifier
}

func (s *TelegramSink) PublishOrderEvent(_ context.Context, ev OrderEvent) error {
	if ev.Type != EventOrderCreated {
		return nil
	}
	text := fmt.Sprintf("Новый заказ #%d — %s, сумма %.2f", ev.OrderID, ev.RestaurantName, ev.Total)
	return s.Notifier.Send(text)
}
