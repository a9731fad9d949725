// Package outbox holds signup events waiting to be relayed to Kafka.
//
// An Entry is written in the same step that completes a signup; the relay
// worker later reads pending entries, produces them and marks them published.
package outbox

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"onboarding/internal/customer/models"
)

// AggregateCustomer is the aggregate type of signup entries.
const AggregateCustomer = "customer"

// Entry is one row of the outbox table.
type Entry struct {
	ID            uuid.UUID
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
	CreatedAt     time.Time
}

// NewEntry encodes msg into a new pending entry keyed by its partition key.
func NewEntry(msg models.Message) (Entry, error) {
	payload, err := msg.Encode()
	if err != nil {
		return Entry{}, fmt.Errorf("encode outbox payload: %w", err)
	}
	return Entry{
		ID:            uuid.New(),
		AggregateType: AggregateCustomer,
		AggregateID:   msg.PartitionKey,
		EventType:     msg.EventType,
		Payload:       payload,
		CreatedAt:     msg.OccurredAt,
	}, nil
}

// IDs returns the ids of entries in order.
func IDs(entries []Entry) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return ids
}
