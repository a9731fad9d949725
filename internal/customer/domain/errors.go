package domain

import "errors"

// ErrorKind enumerates every validation failure the domain can report.
type ErrorKind string

const (
	KindInvalidBirthDate   ErrorKind = "invalid_birth_date"
	KindInvalidEmail       ErrorKind = "invalid_email"
	KindInvalidPhoneNumber ErrorKind = "invalid_phone_number"
	KindNoContactData      ErrorKind = "no_contact_data"
)

var kindMessages = map[ErrorKind]string{
	KindInvalidBirthDate:   "customer must be older than 18 years",
	KindInvalidEmail:       "invalid email address",
	KindInvalidPhoneNumber: "invalid phone number",
	KindNoContactData:      "either an email address or a phone number is required",
}

// Error wraps exactly one ErrorKind. It is comparable, so errors.Is matches
// any two errors carrying the same kind.
type Error struct {
	Kind ErrorKind
}

func (e Error) Error() string {
	if msg, ok := kindMessages[e.Kind]; ok {
		return msg
	}
	return string(e.Kind)
}

var (
	ErrInvalidBirthDate   error = Error{Kind: KindInvalidBirthDate}
	ErrInvalidEmail       error = Error{Kind: KindInvalidEmail}
	ErrInvalidPhoneNumber error = Error{Kind: KindInvalidPhoneNumber}
	ErrNoContactData      error = Error{Kind: KindNoContactData}
)

// KindOf returns the ErrorKind carried by err, if any.
func KindOf(err error) (ErrorKind, bool) {
	var e Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// IsValidationError reports whether err is a domain validation failure.
func IsValidationError(err error) bool {
	_, ok := KindOf(err)
	return ok
}
