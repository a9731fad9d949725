package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboarding/internal/customer/domain"
)

func ptr(s string) *string { return &s }

const (
	validEmail   = "stefan.sevelda@gmail.com"
	validPhone   = "+43 650 500 50 50"
	invalidEmail = "not_a_email"
	invalidPhone = "not a phone number"
)

func TestClassifyContactInfo(t *testing.T) {
	tests := []struct {
		name     string
		phone    *string
		email    *string
		want     domain.ContactInfo
		wantErr  error
		wantKind domain.ContactKind
	}{
		{
			name:    "no contact information provided",
			wantErr: domain.ErrNoContactData,
		},
		{
			name:     "phone only",
			phone:    ptr(validPhone),
			want:     domain.PhoneOnly{Phone: domain.MustPhoneNumber(validPhone)},
			wantKind: domain.ContactPhoneOnly,
		},
		{
			name:     "email only",
			email:    ptr(validEmail),
			want:     domain.EmailOnly{Email: domain.MustEmailAddress(validEmail)},
			wantKind: domain.ContactEmailOnly,
		},
		{
			name:  "email and phone number provided",
			phone: ptr(validPhone),
			email: ptr(validEmail),
			want: domain.Both{
				Email: domain.MustEmailAddress(validEmail),
				Phone: domain.MustPhoneNumber(validPhone),
			},
			wantKind: domain.ContactBoth,
		},
		{
			name:    "invalid phone without email",
			phone:   ptr(invalidPhone),
			wantErr: domain.ErrInvalidPhoneNumber,
		},
		{
			name:    "invalid phone with valid email",
			phone:   ptr(invalidPhone),
			email:   ptr(validEmail),
			wantErr: domain.ErrInvalidPhoneNumber,
		},
		{
			name:    "invalid email without phone",
			email:   ptr(invalidEmail),
			wantErr: domain.ErrInvalidEmail,
		},
		{
			name:    "invalid email with valid phone",
			phone:   ptr(validPhone),
			email:   ptr(invalidEmail),
			wantErr: domain.ErrInvalidEmail,
		},
		{
			name:    "phone error wins when both are malformed",
			phone:   ptr(invalidPhone),
			email:   ptr(invalidEmail),
			wantErr: domain.ErrInvalidPhoneNumber,
		},
		{
			name:    "empty strings are present but malformed",
			phone:   ptr(""),
			email:   ptr(""),
			wantErr: domain.ErrInvalidPhoneNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ClassifyContactInfo(tt.phone, tt.email)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantKind, got.Kind())
		})
	}
}

func TestClassifyContactInfo_Deterministic(t *testing.T) {
	phones := []*string{nil, ptr(validPhone), ptr(invalidPhone)}
	emails := []*string{nil, ptr(validEmail), ptr(invalidEmail)}

	for _, phone := range phones {
		for _, email := range emails {
			first, err1 := domain.ClassifyContactInfo(phone, email)
			second, err2 := domain.ClassifyContactInfo(phone, email)
			assert.Equal(t, first, second)
			assert.Equal(t, err1, err2)
			assert.True(t, (first == nil) != (err1 == nil), "exactly one of value or error")
		}
	}
}

func TestContactAccessors(t *testing.T) {
	email := domain.MustEmailAddress(validEmail)
	phone := domain.MustPhoneNumber(validPhone)

	t.Run("both exposes email and phone", func(t *testing.T) {
		c := domain.Both{Email: email, Phone: phone}
		gotEmail, ok := domain.EmailOf(c)
		assert.True(t, ok)
		assert.Equal(t, email, gotEmail)
		gotPhone, ok := domain.PhoneOf(c)
		assert.True(t, ok)
		assert.Equal(t, phone, gotPhone)
	})

	t.Run("phone only has no email", func(t *testing.T) {
		_, ok := domain.EmailOf(domain.PhoneOnly{Phone: phone})
		assert.False(t, ok)
	})

	t.Run("email only has no phone", func(t *testing.T) {
		_, ok := domain.PhoneOf(domain.EmailOnly{Email: email})
		assert.False(t, ok)
	})
}
