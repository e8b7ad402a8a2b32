// Package events publishes order lifecycle events for downstream consumers
// (fulfilment, notifications). Publishing is best effort; callers decide
// whether a broker failure is fatal.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/aims-store/order-service/internal/config"
	"github.com/aims-store/order-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

const (
	TypeOrderPlaced    = "order.placed"
	TypeOrderCancelled = "order.cancelled"
)

type envelope struct {
	Type       string `json:"type"`
	OrderID    int64  `json:"order_id"`
	OccurredAt string `json:"occurred_at"`

	TrackingCode  string `json:"tracking_code,omitempty"`
	TotalAfterVAT int64  `json:"total_after_vat,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
	RefundAmount  int64  `json:"refund_amount,omitempty"`
	UpdatedStatus string `json:"updated_status,omitempty"`
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

func (p *kafkaPublisher) OrderPlaced(ctx context.Context, order entities.Order) error {
	return p.publish(ctx, envelope{
		Type:          TypeOrderPlaced,
		OrderID:       order.OrderID,
		TrackingCode:  order.TrackingCode,
		TotalAfterVAT: order.TotalAfterVAT,
		PaymentMethod: string(order.PaymentMethod),
	})
}

func (p *kafkaPublisher) OrderCancelled(ctx context.Context, orderID int64, refundAmount int64) error {
	return p.publish(ctx, envelope{
		Type:          TypeOrderCancelled,
		OrderID:       orderID,
		RefundAmount:  refundAmount,
		UpdatedStatus: string(entities.StatusCancelled),
	})
}

func (p *kafkaPublisher) publish(ctx context.Context, e envelope) error {
	e.OccurredAt = time.Now().UTC().Format(time.RFC3339)

	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// keyed by order id so one order's events stay ordered within a partition
	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(e.OrderID, 10)),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	p.logger.DebugContext(ctx, "event published",
		slog.String("type", e.Type), slog.Int64("order_id", e.OrderID))
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
