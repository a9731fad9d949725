package handler

import (
	"time"

	"onboarding/internal/customer/domain"
	"onboarding/internal/customer/link"
	"onboarding/internal/customer/models"
)

// SignupResponse is returned with 201 Created.
type SignupResponse struct {
	PartitionKey  string             `json:"partition_key"`
	RiskScore     models.RiskScore   `json:"risk_score"`
	ContactKind   domain.ContactKind `json:"contact_kind"`
	LinkExpiresAt time.Time          `json:"link_expires_at"`
}

func toSignupResponse(event *models.EventMetaInformation) SignupResponse {
	return SignupResponse{
		PartitionKey:  event.PartitionKey.String(),
		RiskScore:     event.Payload.RiskScore,
		ContactKind:   event.Payload.Customer.ContactInfo().Kind(),
		LinkExpiresAt: event.Payload.Link.ExpiresAt.UTC(),
	}
}

// ValidateResponse lists the rule each invalid field breaks.
type ValidateResponse struct {
	Valid  bool                        `json:"valid"`
	Errors map[string]domain.ErrorKind `json:"errors,omitempty"`
}

// VerifyResponse echoes the contact data a verification link was issued for.
type VerifyResponse struct {
	FirstName   string             `json:"first_name"`
	LastName    string             `json:"last_name"`
	ContactKind domain.ContactKind `json:"contact_kind"`
	Email       string             `json:"email,omitempty"`
	PhoneNumber string             `json:"phone_number,omitempty"`
	ExpiresAt   time.Time          `json:"expires_at"`
}

func toVerifyResponse(claims *link.Claims) VerifyResponse {
	resp := VerifyResponse{
		FirstName:   claims.FirstName,
		LastName:    claims.LastName,
		ContactKind: claims.ContactKind,
		Email:       claims.Email,
		PhoneNumber: claims.PhoneNumber,
	}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.UTC()
	}
	return resp
}
