package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/dairy-service/internal/config"
	"github.com/SergeyBogomolovv/dairy-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

// OrderPlacedEvent is the wire format of a successful placement.
type OrderPlacedEvent struct {
	OrderID      string           `json:"order_id"`
	UserID       string           `json:"user_id"`
	TotalAmount  string           `json:"total_amount"`
	Status       string           `json:"status"`
	OrderDate    time.Time        `json:"order_date"`
	DeliveryDate time.Time        `json:"delivery_date"`
	Items        []OrderItemEvent `json:"items"`
}

type OrderItemEvent struct {
	ProductID string `json:"product_id"`
	Quantity  string `json:"quantity"`
	Price     string `json:"price"`
	Subtotal  string `json:"subtotal"`
}

type kafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

// OrderPlaced publishes the event keyed by order id. The library already
// retries transient broker errors.
func (p *kafkaPublisher) OrderPlaced(ctx context.Context, order entities.Order) error {
	event := OrderPlacedEvent{
		OrderID:      order.ID,
		UserID:       order.UserID,
		TotalAmount:  order.TotalAmount.String(),
		Status:       string(order.Status),
		OrderDate:    order.OrderDate,
		DeliveryDate: order.DeliveryDate,
		Items:        make([]OrderItemEvent, 0, len(order.Items)),
	}
	for _, it := range order.Items {
		event.Items = append(event.Items, OrderItemEvent{
			ProductID: it.ProductID,
			Quantity:  it.Quantity.String(),
			Price:     it.Price.String(),
			Subtotal:  it.Subtotal.String(),
		})
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.ID),
		Value: value,
	})
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
