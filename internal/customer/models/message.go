package models

import (
	"encoding/json"
	"fmt"
	"time"

	"onboarding/internal/customer/domain"
)

// Message is the JSON wire form of a signup event, shared by the outbox and
// the Kafka publisher.
type Message struct {
	PartitionKey string          `json:"partition_key"`
	EventType    string          `json:"event_type"`
	OccurredAt   time.Time       `json:"occurred_at"`
	Customer     CustomerMessage `json:"customer"`
	RiskScore    RiskScore       `json:"risk_score"`
	Link         LinkMessage     `json:"link"`
}

type CustomerMessage struct {
	FirstName   string             `json:"first_name"`
	LastName    string             `json:"last_name"`
	BirthDate   string             `json:"birth_date"`
	ContactKind domain.ContactKind `json:"contact_kind"`
	Email       string             `json:"email,omitempty"`
	PhoneNumber string             `json:"phone_number,omitempty"`
}

type LinkMessage struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// DateLayout is the calendar date format used on the wire.
const DateLayout = "2006-01-02"

// NewCustomerMessage flattens a validated customer for serialization.
func NewCustomerMessage(c domain.Customer) CustomerMessage {
	msg := CustomerMessage{
		FirstName:   c.FirstName(),
		LastName:    c.LastName(),
		BirthDate:   c.BirthDate().BirthDate().Format(DateLayout),
		ContactKind: c.ContactInfo().Kind(),
	}
	if email, ok := domain.EmailOf(c.ContactInfo()); ok {
		msg.Email = email.String()
	}
	if phone, ok := domain.PhoneOf(c.ContactInfo()); ok {
		msg.PhoneNumber = phone.String()
	}
	return msg
}

// NewMessage builds the wire form of event. The link token is not part of
// the message; consumers receive the URL that embeds it.
func NewMessage(event EventMetaInformation, occurredAt time.Time) Message {
	return Message{
		PartitionKey: event.PartitionKey.String(),
		EventType:    EventTypeCustomerSignedUp,
		OccurredAt:   occurredAt.UTC(),
		Customer:     NewCustomerMessage(event.Payload.Customer),
		RiskScore:    event.Payload.RiskScore,
		Link: LinkMessage{
			URL:       event.Payload.Link.URL,
			ExpiresAt: event.Payload.Link.ExpiresAt.UTC(),
		},
	}
}

// Encode marshals the message to JSON.
func (m Message) Encode() ([]byte, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal %s message: %w", m.EventType, err)
	}
	return b, nil
}
