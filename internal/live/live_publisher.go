package live

import (
	"context"
	"encoding/json"

	"go-payledger/internal/events"

	"github.com/segmentio/kafka-go"
)

type EventPublisher interface {
	PublishSnapshotRefreshed(ctx context.Context, event events.PayrollSnapshotRefreshedEvent) error
}

type noopEventPublisher struct{}

func NewNoopEventPublisher() EventPublisher { return noopEventPublisher{} }

func (noopEventPublisher) PublishSnapshotRefreshed(context.Context, events.PayrollSnapshotRefreshedEvent) error {
	return nil
}

type kafkaEventPublisher struct {
	writer *kafka.Writer
}

func NewKafkaEventPublisher(writer *kafka.Writer) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishSnapshotRefreshed(
	ctx context.Context,
	event events.PayrollSnapshotRefreshedEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: events.PayrollSnapshotRefreshedTopic,
		Key:   []byte(event.Month),
		Value: payload,
	})
}
