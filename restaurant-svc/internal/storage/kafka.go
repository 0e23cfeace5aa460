package storage

import (
	"context"
	"encoding/json"

	"rik-restaurant/restaurant-svc/internal/domain"
	"rik-restaurant/restaurant-svc/internal/service"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher keys messages by identity so one customer's events stay
// ordered within a partition.
type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Identity),
		Value: payload,
	})
}

var _ service.EventPublisher = (*KafkaPublisher)(nil)
