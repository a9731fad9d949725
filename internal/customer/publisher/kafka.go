package publisher

import (
	"context"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"

	"onboarding/internal/customer/domain"
	"onboarding/internal/customer/models"
	"onboarding/pkg/platform/sentinel"
	"onboarding/pkg/requestcontext"
)

// HeaderEventType carries the event type on produced records.
const HeaderEventType = "event_type"

// Producer is the subset of *kgo.Client used to produce records.
type Producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

// NewRecord builds the Kafka record for a signup event. The partition key
// is the record key so all events of one signup land on one partition.
func NewRecord(topic, key, eventType string, payload []byte) *kgo.Record {
	return &kgo.Record{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
		Headers: []kgo.RecordHeader{
			{Key: HeaderEventType, Value: []byte(eventType)},
		},
	}
}

// KafkaPublisher produces signup events synchronously.
type KafkaPublisher struct {
	producer Producer
	topic    string
	options
}

// NewKafkaPublisher creates a publisher producing to topic.
func NewKafkaPublisher(producer Producer, topic string, opts ...Option) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic, options: newOptions(opts)}
}

// Publish produces the event and waits for the broker acknowledgement.
func (p *KafkaPublisher) Publish(ctx context.Context, customer domain.Customer, score models.RiskScore, link models.VerificationLink) (*models.EventMetaInformation, error) {
	event := newEvent(p.newKey(), customer, score, link)

	msg := models.NewMessage(*event, p.clock(ctx))
	payload, err := msg.Encode()
	if err != nil {
		return nil, err
	}

	record := NewRecord(p.topic, msg.PartitionKey, msg.EventType, payload)
	if err := p.producer.ProduceSync(ctx, record).FirstErr(); err != nil {
		p.logger.ErrorContext(ctx, "failed to produce signup event",
			"request_id", requestcontext.RequestID(ctx),
			"partition_key", msg.PartitionKey,
			"topic", p.topic,
			"error", err,
		)
		return nil, fmt.Errorf("produce signup event: %w: %w", sentinel.ErrUnavailable, err)
	}
	return event, nil
}
