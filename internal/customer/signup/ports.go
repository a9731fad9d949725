package signup

import (
	"context"
	"time"

	"onboarding/internal/customer/domain"
	"onboarding/internal/customer/link"
	"onboarding/internal/customer/models"
)

// Clock returns "now" for a request. The default reads the request-scoped
// time set by the HTTP middleware.
type Clock func(ctx context.Context) time.Time

// RiskModelProvider fetches the risk model used to score new customers.
type RiskModelProvider interface {
	Fetch(ctx context.Context) (models.RiskModel, error)
}

// LinkIssuer signs verification links. Issue is pure: the same customer and
// expiry always produce the same link.
type LinkIssuer interface {
	Issue(customer domain.Customer, expiresAt time.Time) (models.VerificationLink, error)
	Verify(token string, now time.Time) (*link.Claims, error)
}

// EventPublisher publishes the customer-signed-up event. It assigns a fresh
// partition key to every event.
type EventPublisher interface {
	Publish(ctx context.Context, customer domain.Customer, score models.RiskScore, link models.VerificationLink) (*models.EventMetaInformation, error)
}
