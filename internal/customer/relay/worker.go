// Package relay moves signup events from the outbox to Kafka.
package relay

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kgo"

	"onboarding/internal/customer/metrics"
	"onboarding/internal/customer/outbox"
	"onboarding/internal/customer/publisher"
	txcontext "onboarding/pkg/platform/tx"
)

const (
	DefaultInterval  = time.Second
	DefaultBatchSize = 100
	DefaultAttempts  = 3
)

// Store is the outbox view needed by the relay.
type Store interface {
	Pending(ctx context.Context, limit int) ([]outbox.Entry, error)
	MarkPublished(ctx context.Context, ids []uuid.UUID, at time.Time) error
}

// Worker polls the outbox and produces pending entries. Delivery is at least
// once: a batch whose produce succeeded but whose mark failed is produced
// again on the next tick.
type Worker struct {
	store     Store
	producer  publisher.Producer
	topic     string
	db        *sql.DB
	interval  time.Duration
	batchSize int
	attempts  uint
	delay     time.Duration
	now       func() time.Time
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// Option configures the Worker.
type Option func(*Worker)

// WithDB runs each batch inside a transaction on db, so the rows read by
// Pending stay locked until they are marked.
func WithDB(db *sql.DB) Option {
	return func(w *Worker) {
		w.db = db
	}
}

func WithInterval(d time.Duration) Option {
	return func(w *Worker) {
		if d > 0 {
			w.interval = d
		}
	}
}

func WithBatchSize(n int) Option {
	return func(w *Worker) {
		if n > 0 {
			w.batchSize = n
		}
	}
}

// WithRetry sets how many times a batch is produced before the tick gives up.
// Zero attempts keeps the default; retry-go would otherwise retry forever.
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(w *Worker) {
		if attempts > 0 {
			w.attempts = attempts
		}
		w.delay = delay
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(w *Worker) {
		w.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(w *Worker) {
		w.metrics = m
	}
}

func WithNow(now func() time.Time) Option {
	return func(w *Worker) {
		w.now = now
	}
}

// New creates a relay worker producing to topic.
func New(store Store, producer publisher.Producer, topic string, opts ...Option) *Worker {
	w := &Worker{
		store:     store,
		producer:  producer,
		topic:     topic,
		interval:  DefaultInterval,
		batchSize: DefaultBatchSize,
		attempts:  DefaultAttempts,
		delay:     100 * time.Millisecond,
		now:       time.Now,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run relays on every tick until ctx is done. Batch failures are logged and
// retried on the next tick.
func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.InfoContext(ctx, "outbox relay started", "topic", w.topic, "interval", w.interval)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := w.RelayOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
				w.logger.ErrorContext(ctx, "outbox relay failed", "error", err)
			}
		}
	}
}

// RelayOnce produces one batch of pending entries and returns how many were
// marked published.
func (w *Worker) RelayOnce(ctx context.Context) (int, error) {
	var relayed int
	err := w.inTx(ctx, func(ctx context.Context) error {
		entries, err := w.store.Pending(ctx, w.batchSize)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}

		if err := w.produce(ctx, entries); err != nil {
			w.metrics.IncrementRelayFailures()
			return err
		}
		if err := w.store.MarkPublished(ctx, outbox.IDs(entries), w.now()); err != nil {
			return err
		}
		relayed = len(entries)
		return nil
	})
	if err != nil {
		return 0, err
	}
	w.metrics.AddRelayed(relayed)
	return relayed, nil
}

func (w *Worker) produce(ctx context.Context, entries []outbox.Entry) error {
	records := make([]*kgo.Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, publisher.NewRecord(w.topic, e.AggregateID, e.EventType, e.Payload))
	}

	err := retry.Do(
		func() error {
			return w.producer.ProduceSync(ctx, records...).FirstErr()
		},
		retry.Context(ctx),
		retry.Attempts(w.attempts),
		retry.Delay(w.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			w.logger.WarnContext(ctx, "retrying outbox batch", "attempt", n+1, "batch_size", len(records), "error", err)
		}),
	)
	if err != nil {
		return fmt.Errorf("produce outbox batch: %w", err)
	}
	return nil
}

func (w *Worker) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if w.db == nil {
		return fn(ctx)
	}
	return txcontext.Run(ctx, w.db, fn)
}
