package models

import (
	"time"

	"github.com/google/uuid"

	"onboarding/internal/customer/domain"
)

// RiskScore is the closed set of risk levels assigned at signup.
type RiskScore string

const (
	RiskHigh   RiskScore = "HIGH"
	RiskMedium RiskScore = "MEDIUM"
	RiskLow    RiskScore = "LOW"
)

// IsValid reports whether s is one of the known scores.
func (s RiskScore) IsValid() bool {
	switch s {
	case RiskHigh, RiskMedium, RiskLow:
		return true
	}
	return false
}

// RiskModel is fetched from a RiskModelProvider and fed to the scoring
// function. The signup pipeline treats it as opaque.
type RiskModel struct {
	Version   string                           `json:"version"`
	Baseline  RiskScore                        `json:"baseline"`
	ByContact map[domain.ContactKind]RiskScore `json:"by_contact,omitempty"`
}

// VerificationLink is the opaque, signed token sent to the customer to
// verify their contact data, plus the URL it is delivered as.
type VerificationLink struct {
	Token     string
	URL       string
	ExpiresAt time.Time
}

// Payload is the body of the customer-signed-up event.
type Payload struct {
	Customer  domain.Customer
	RiskScore RiskScore
	Link      VerificationLink
}

// EventMetaInformation describes a published signup event.
type EventMetaInformation struct {
	PartitionKey uuid.UUID
	Payload      Payload
}

// EventTypeCustomerSignedUp is the event type used on the wire and in the outbox.
const EventTypeCustomerSignedUp = "customer_signed_up"
