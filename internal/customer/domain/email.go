package domain

import "regexp"

// EmailAddress is a string known to match the email grammar
// local-part "@" domain "." tld.
type EmailAddress struct {
	value string
}

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]+$`)

// NewEmailAddress validates raw as a whole; no trimming or case folding is applied.
func NewEmailAddress(raw string) (EmailAddress, error) {
	if !emailPattern.MatchString(raw) {
		return EmailAddress{}, ErrInvalidEmail
	}
	return EmailAddress{value: raw}, nil
}

// MustEmailAddress creates an EmailAddress, panicking if invalid.
func MustEmailAddress(raw string) EmailAddress {
	e, err := NewEmailAddress(raw)
	if err != nil {
		panic(err)
	}
	return e
}

func (e EmailAddress) String() string { return e.value }
func (e EmailAddress) IsZero() bool   { return e.value == "" }
