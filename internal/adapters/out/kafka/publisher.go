// Package kafka publishes order change events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/IBM/sarama"
)

var _ ports.EventPublisher = (*Publisher)(nil)

type message struct {
	Type       string    `json:"type"`
	OrderID    int       `json:"orderId"`
	ShipmentID string    `json:"shipmentId,omitempty"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher sends each event as one JSON message keyed by order id, so the
// events of an order land on one partition in order.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewSyncProducer connects a producer that waits for broker acknowledgement.
func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Timeout = 5 * time.Second

	return sarama.NewSyncProducer(brokers, config)
}

// NewPublisher creates a Publisher writing to topic.
func NewPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) (*Publisher, error) {
	if producer == nil {
		return nil, errs.NewValueIsRequiredError("producer")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Publisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka-publisher"),
	}, nil
}

// Publish sends the event and waits for the acknowledgement.
func (p *Publisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if event.Type == "" {
		return errs.NewValueIsRequiredError("event type")
	}

	body, err := json.Marshal(message{
		Type:       string(event.Type),
		OrderID:    event.OrderID,
		ShipmentID: event.ShipmentID,
		Status:     event.Status,
		OccurredAt: event.OccurredAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event.Type, err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.Itoa(event.OrderID)),
		Value: sarama.ByteEncoder(body),
	})
	if err != nil {
		return fmt.Errorf("send %s event to %s: %w", event.Type, p.topic, err)
	}

	p.logger.DebugContext(ctx, "event published",
		"type", event.Type,
		"order_id", event.OrderID,
		"partition", partition,
		"offset", offset,
	)
	return nil
}

// Close closes the underlying producer.
func (p *Publisher) Close() error {
	return p.producer.Close()
}

// NopPublisher drops every event. It stands in when no broker is configured.
type NopPublisher struct{}

var _ ports.EventPublisher = NopPublisher{}

func (NopPublisher) Publish(context.Context, ports.OrderEvent) error {
	return nil
}
