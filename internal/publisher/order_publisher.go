package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/models"
)

const DefaultOrderPlacedQueue = "order.placed"

// Queue is the part of messaging.RabbitMQ the publisher uses.
type Queue interface {
	DeclareQueue(name string) error
	Publish(ctx context.Context, queue string, message []byte) error
}

type OrderPublisher struct {
	mq    Queue
	queue string
}

func NewOrderPublisher(mq Queue, queue string) (*OrderPublisher, error) {
	if queue == "" {
		queue = DefaultOrderPlacedQueue
	}
	if err := mq.DeclareQueue(queue); err != nil {
		return nil, err
	}

	return &OrderPublisher{mq: mq, queue: queue}, nil
}

// NotifyOrderPlaced publishes an order.placed event
func (p *OrderPublisher) NotifyOrderPlaced(ctx context.Context, order models.Order) error {
	data, err := json.Marshal(NewOrderPlacedEvent(order))
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return p.mq.Publish(ctx, p.queue, data)
}

func NewOrderPlacedEvent(order models.Order) models.OrderPlacedEvent {
	event := models.OrderPlacedEvent{
		OrderID:      order.ID,
		CustomerID:   order.CustomerID,
		CustomerName: order.CustomerName,
		TotalAmount:  order.TotalAmount,
		PlacedAt:     order.PlacedAt,
		Items:        make([]models.OrderItemEvent, 0, len(order.Items)),
	}

	for _, item := range order.Items {
		event.Items = append(event.Items, models.OrderItemEvent{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return event
}
