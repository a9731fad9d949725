// Package link issues and verifies signed verification links.
//
// A link token is an HS256 JWT over the customer's data and the link expiry.
// No random or time-of-issue claims are included, so issuing twice for the
// same customer and expiry yields the same token.
package link

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"onboarding/internal/customer/domain"
	"onboarding/internal/customer/models"
	"onboarding/pkg/platform/sentinel"
)

const audience = "contact-verification"

var (
	// ErrInvalidLink indicates the token is malformed, tampered with or issued elsewhere.
	ErrInvalidLink = errors.New("invalid verification link")
	// ErrLinkExpired indicates the token signature is valid but the link expired.
	ErrLinkExpired = fmt.Errorf("verification link: %w", sentinel.ErrExpired)
)

// Claims are the signed contents of a verification link.
type Claims struct {
	FirstName   string             `json:"first_name"`
	LastName    string             `json:"last_name"`
	BirthDate   string             `json:"birth_date"`
	ContactKind domain.ContactKind `json:"contact_kind"`
	Email       string             `json:"email,omitempty"`
	PhoneNumber string             `json:"phone_number,omitempty"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies verification links.
type Issuer struct {
	signingKey []byte
	issuer     string
	baseURL    *url.URL
}

// NewIssuer creates an Issuer. baseURL is the page that receives the token
// as its "token" query parameter.
func NewIssuer(signingKey, issuer, baseURL string) (*Issuer, error) {
	if signingKey == "" {
		return nil, errors.New("link signing key is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse link base URL: %w", err)
	}
	return &Issuer{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		baseURL:    u,
	}, nil
}

// Issue builds the verification link for customer expiring at expiresAt.
func (i *Issuer) Issue(customer domain.Customer, expiresAt time.Time) (models.VerificationLink, error) {
	msg := models.NewCustomerMessage(customer)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		FirstName:   msg.FirstName,
		LastName:    msg.LastName,
		BirthDate:   msg.BirthDate,
		ContactKind: msg.ContactKind,
		Email:       msg.Email,
		PhoneNumber: msg.PhoneNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{audience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(i.signingKey)
	if err != nil {
		return models.VerificationLink{}, fmt.Errorf("sign verification link: %w", err)
	}

	return models.VerificationLink{
		Token:     signed,
		URL:       i.urlFor(signed),
		ExpiresAt: expiresAt,
	}, nil
}

// Verify checks token against the signing key and now.
func (i *Issuer) Verify(token string, now time.Time) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return i.signingKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrLinkExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidLink, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidLink
	}
	return claims, nil
}

func (i *Issuer) urlFor(token string) string {
	u := *i.baseURL
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String()
}
