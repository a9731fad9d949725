package outbox

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboarding/internal/customer/models"
)

func TestNewEntry(t *testing.T) {
	occurredAt := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	msg := models.Message{
		PartitionKey: uuid.NewString(),
		EventType:    models.EventTypeCustomerSignedUp,
		OccurredAt:   occurredAt,
		RiskScore:    models.RiskMedium,
	}

	entry, err := NewEntry(msg)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.Equal(t, AggregateCustomer, entry.AggregateType)
	assert.Equal(t, msg.PartitionKey, entry.AggregateID)
	assert.Equal(t, models.EventTypeCustomerSignedUp, entry.EventType)
	assert.Equal(t, occurredAt, entry.CreatedAt)

	var decoded models.Message
	require.NoError(t, json.Unmarshal(entry.Payload, &decoded))
	assert.Equal(t, msg.PartitionKey, decoded.PartitionKey)
	assert.Equal(t, models.RiskMedium, decoded.RiskScore)
}

func TestIDs(t *testing.T) {
	a, b := Entry{ID: uuid.New()}, Entry{ID: uuid.New()}
	assert.Equal(t, []uuid.UUID{a.ID, b.ID}, IDs([]Entry{a, b}))
	assert.Empty(t, IDs(nil))
}
