package domain

import "regexp"

// PhoneNumber is a string known to match the phone grammar: optional leading
// "+", optional parenthesized 1-4 digit prefix, then digits, whitespace and
// the separators "-", ".", "/". Whitespace is space, tab, newline, vertical
// tab, form feed and carriage return.
type PhoneNumber struct {
	value string
}

var phonePattern = regexp.MustCompile(`^[+]*[(]?[0-9]{1,4}[)]?[-\t\n\v\f\r ./0-9]*$`)

// NewPhoneNumber validates raw as a whole. The original formatting is kept.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	if !phonePattern.MatchString(raw) {
		return PhoneNumber{}, ErrInvalidPhoneNumber
	}
	return PhoneNumber{value: raw}, nil
}

// MustPhoneNumber creates a PhoneNumber, panicking if invalid.
func MustPhoneNumber(raw string) PhoneNumber {
	p, err := NewPhoneNumber(raw)
	if err != nil {
		panic(err)
	}
	return p
}

func (p PhoneNumber) String() string { return p.value }
func (p PhoneNumber) IsZero() bool   { return p.value == "" }
