package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"onboarding/internal/customer/domain"
	"onboarding/internal/customer/models"
	"onboarding/internal/customer/outbox"
	"onboarding/internal/customer/outbox/memory"
	"onboarding/pkg/platform/sentinel"
)

var (
	now        = time.Date(2026, 10, 16, 9, 41, 37, 0, time.UTC)
	fixedKey   = uuid.MustParse("5b8f3a4e-8a40-4c36-9f5f-3d2b1f0e9c11")
	quietLog   = slog.New(slog.NewTextHandler(io.Discard, nil))
	testLink   = models.VerificationLink{Token: "tok", URL: "https://example.com/verify?token=tok", ExpiresAt: now.AddDate(0, 0, 1)}
	testOption = []Option{
		WithLogger(quietLog),
		WithClock(func(context.Context) time.Time { return now }),
		WithKeyGenerator(func() uuid.UUID { return fixedKey }),
	}
)

func testCustomer(t *testing.T) domain.Customer {
	t.Helper()
	email := "stefan.sevelda@gmail.com"
	customer, err := domain.BuildCustomer(domain.CreateCustomerRequest{
		FirstName: "Stefan",
		LastName:  "Sevelda",
		BirthDate: time.Date(1991, 3, 26, 0, 0, 0, 0, time.UTC),
		Email:     &email,
	}, now)
	require.NoError(t, err)
	return customer
}

type failingWriter struct{ err error }

func (w failingWriter) Append(context.Context, outbox.Entry) error { return w.err }

func TestOutboxPublisher(t *testing.T) {
	ctx := context.Background()
	customer := testCustomer(t)

	t.Run("appends the event and returns its metadata", func(t *testing.T) {
		store := memory.NewInMemoryStore()
		event, err := NewOutboxPublisher(store, testOption...).Publish(ctx, customer, models.RiskMedium, testLink)
		require.NoError(t, err)

		assert.Equal(t, fixedKey, event.PartitionKey)
		assert.Equal(t, customer, event.Payload.Customer)
		assert.Equal(t, models.RiskMedium, event.Payload.RiskScore)
		assert.Equal(t, testLink, event.Payload.Link)

		entries := store.All()
		require.Len(t, entries, 1)
		assert.Equal(t, fixedKey.String(), entries[0].AggregateID)
		assert.Equal(t, models.EventTypeCustomerSignedUp, entries[0].EventType)
		assert.Equal(t, now, entries[0].CreatedAt)

		var msg models.Message
		require.NoError(t, json.Unmarshal(entries[0].Payload, &msg))
		assert.Equal(t, "stefan.sevelda@gmail.com", msg.Customer.Email)
		assert.Equal(t, testLink.URL, msg.Link.URL)
	})

	t.Run("store failure is reported as unavailable", func(t *testing.T) {
		cause := errors.New("connection refused")
		_, err := NewOutboxPublisher(failingWriter{err: cause}, testOption...).Publish(ctx, customer, models.RiskMedium, testLink)
		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, sentinel.ErrUnavailable)
	})

	t.Run("default key generator yields distinct keys", func(t *testing.T) {
		p := NewOutboxPublisher(memory.NewInMemoryStore(), WithLogger(quietLog))
		first, err := p.Publish(ctx, customer, models.RiskMedium, testLink)
		require.NoError(t, err)
		second, err := p.Publish(ctx, customer, models.RiskMedium, testLink)
		require.NoError(t, err)
		assert.NotEqual(t, first.PartitionKey, second.PartitionKey)
	})
}

type fakeProducer struct {
	records []*kgo.Record
	err     error
}

func (p *fakeProducer) ProduceSync(_ context.Context, rs ...*kgo.Record) kgo.ProduceResults {
	results := make(kgo.ProduceResults, 0, len(rs))
	for _, r := range rs {
		p.records = append(p.records, r)
		results = append(results, kgo.ProduceResult{Record: r, Err: p.err})
	}
	return results
}

func TestKafkaPublisher(t *testing.T) {
	ctx := context.Background()
	customer := testCustomer(t)

	t.Run("produces a keyed record", func(t *testing.T) {
		producer := &fakeProducer{}
		event, err := NewKafkaPublisher(producer, "customer-signups", testOption...).Publish(ctx, customer, models.RiskLow, testLink)
		require.NoError(t, err)
		assert.Equal(t, fixedKey, event.PartitionKey)

		require.Len(t, producer.records, 1)
		record := producer.records[0]
		assert.Equal(t, "customer-signups", record.Topic)
		assert.Equal(t, fixedKey.String(), string(record.Key))
		require.Len(t, record.Headers, 1)
		assert.Equal(t, HeaderEventType, record.Headers[0].Key)
		assert.Equal(t, models.EventTypeCustomerSignedUp, string(record.Headers[0].Value))

		var msg models.Message
		require.NoError(t, json.Unmarshal(record.Value, &msg))
		assert.Equal(t, models.RiskLow, msg.RiskScore)
	})

	t.Run("broker failure is reported as unavailable", func(t *testing.T) {
		cause := errors.New("not leader for partition")
		_, err := NewKafkaPublisher(&fakeProducer{err: cause}, "customer-signups", testOption...).Publish(ctx, customer, models.RiskLow, testLink)
		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, sentinel.ErrUnavailable)
	})
}
