// Package publisher delivers customer-signed-up events.
//
// OutboxPublisher appends events to the transactional outbox, from which the
// relay produces them to Kafka. KafkaPublisher produces directly.
package publisher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"onboarding/internal/customer/domain"
	"onboarding/internal/customer/models"
	"onboarding/internal/customer/outbox"
	"onboarding/pkg/platform/sentinel"
	"onboarding/pkg/requestcontext"
)

// OutboxWriter persists outbox entries.
type OutboxWriter interface {
	Append(ctx context.Context, entry outbox.Entry) error
}

// Option configures a publisher.
type Option func(*options)

type options struct {
	logger *slog.Logger
	clock  func(context.Context) time.Time
	newKey func() uuid.UUID
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock overrides the request clock used for occurred_at.
func WithClock(clock func(context.Context) time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithKeyGenerator overrides uuid.New for partition keys.
func WithKeyGenerator(newKey func() uuid.UUID) Option {
	return func(o *options) {
		o.newKey = newKey
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger: slog.Default(),
		clock:  requestcontext.Now,
		newKey: uuid.New,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func newEvent(key uuid.UUID, customer domain.Customer, score models.RiskScore, link models.VerificationLink) *models.EventMetaInformation {
	return &models.EventMetaInformation{
		PartitionKey: key,
		Payload: models.Payload{
			Customer:  customer,
			RiskScore: score,
			Link:      link,
		},
	}
}

// OutboxPublisher records signup events in the outbox.
type OutboxPublisher struct {
	store OutboxWriter
	options
}

// NewOutboxPublisher creates a publisher writing to store.
func NewOutboxPublisher(store OutboxWriter, opts ...Option) *OutboxPublisher {
	return &OutboxPublisher{store: store, options: newOptions(opts)}
}

// Publish appends the event to the outbox under a fresh partition key.
func (p *OutboxPublisher) Publish(ctx context.Context, customer domain.Customer, score models.RiskScore, link models.VerificationLink) (*models.EventMetaInformation, error) {
	event := newEvent(p.newKey(), customer, score, link)

	entry, err := outbox.NewEntry(models.NewMessage(*event, p.clock(ctx)))
	if err != nil {
		return nil, err
	}
	if err := p.store.Append(ctx, entry); err != nil {
		p.logger.ErrorContext(ctx, "failed to append signup event to outbox",
			"request_id", requestcontext.RequestID(ctx),
			"partition_key", event.PartitionKey.String(),
			"error", err,
		)
		return nil, fmt.Errorf("append signup event: %w: %w", sentinel.ErrUnavailable, err)
	}
	return event, nil
}
