package signup

import (
	"context"

	"onboarding/internal/customer/domain"
)

// Field names reported by ValidateFields.
const (
	FieldBirthDate   = "birth_date"
	FieldEmail       = "email"
	FieldPhoneNumber = "phone_number"
	FieldContact     = "contact"
)

// FieldErrors maps a request field to the rule it violates.
type FieldErrors map[string]domain.ErrorKind

// ValidateFields runs each validator on its own field for form feedback.
// Unlike Signup it does not stop at the first failure: every field that
// is present is checked, and a missing email and phone is reported under
// FieldContact.
func (s *Service) ValidateFields(ctx context.Context, req domain.CreateCustomerRequest) FieldErrors {
	errs := FieldErrors{}

	if _, err := domain.NewFullLegalAge(req.BirthDate, s.clock(ctx)); err != nil {
		errs.add(FieldBirthDate, err)
	}
	if req.Email != nil {
		if _, err := domain.NewEmailAddress(*req.Email); err != nil {
			errs.add(FieldEmail, err)
		}
	}
	if req.PhoneNumber != nil {
		if _, err := domain.NewPhoneNumber(*req.PhoneNumber); err != nil {
			errs.add(FieldPhoneNumber, err)
		}
	}
	if req.Email == nil && req.PhoneNumber == nil {
		errs.add(FieldContact, domain.ErrNoContactData)
	}
	return errs
}

func (e FieldErrors) add(field string, err error) {
	if kind, ok := domain.KindOf(err); ok {
		e[field] = kind
	}
}
