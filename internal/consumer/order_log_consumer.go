package consumer

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/models"
)

// Delivery is the part of amqp.Delivery the consumer acknowledges through.
type Delivery interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

// OrderLogConsumer writes every order.placed event to the log.
type OrderLogConsumer struct {
	logger *zap.Logger
}

func NewOrderLogConsumer(logger *zap.Logger) *OrderLogConsumer {
	return &OrderLogConsumer{logger: logger}
}

// Run handles deliveries until the channel closes or ctx is cancelled.
func (c *OrderLogConsumer) Run(ctx context.Context, messages <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			c.Handle(&msg, msg.Body)
		}
	}
}

// Handle logs one event. Malformed payloads are dropped without requeue.
func (c *OrderLogConsumer) Handle(d Delivery, body []byte) {
	var event models.OrderPlacedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.logger.Warn("❌ Failed to parse event", zap.Error(err))
		d.Nack(false, false)
		return
	}

	units := 0
	for _, item := range event.Items {
		units += item.Quantity
	}

	c.logger.Info("📦 Order placed",
		zap.String("order_id", event.OrderID),
		zap.Int("customer_id", event.CustomerID),
		zap.String("customer_name", event.CustomerName),
		zap.Float64("total_amount", event.TotalAmount),
		zap.Int("lines", len(event.Items)),
		zap.Int("units", units),
		zap.Time("placed_at", event.PlacedAt),
	)
	d.Ack(false)
}
