package domain

import "time"

// CreateCustomerRequest is the raw, untrusted signup input. It carries no
// invariants and may be entirely empty.
type CreateCustomerRequest struct {
	FirstName   string
	LastName    string
	BirthDate   time.Time
	Email       *string
	PhoneNumber *string
}

// Customer is the validated aggregate. It has no exported fields and no
// mutation methods; BuildCustomer is the only way to obtain a non-zero value.
type Customer struct {
	firstName   string
	lastName    string
	birthDate   FullLegalAge
	contactInfo ContactInfo
}

// BuildCustomer validates req against now.
//
// Birth date errors take precedence over contact info errors: when the age
// check fails, contact data is not looked at.
func BuildCustomer(req CreateCustomerRequest, now time.Time) (Customer, error) {
	birthDate, err := NewFullLegalAge(req.BirthDate, now)
	if err != nil {
		return Customer{}, err
	}

	contactInfo, err := ClassifyContactInfo(req.PhoneNumber, req.Email)
	if err != nil {
		return Customer{}, err
	}

	return Customer{
		firstName:   req.FirstName,
		lastName:    req.LastName,
		birthDate:   birthDate,
		contactInfo: contactInfo,
	}, nil
}

func (c Customer) FirstName() string        { return c.firstName }
func (c Customer) LastName() string         { return c.lastName }
func (c Customer) BirthDate() FullLegalAge  { return c.birthDate }
func (c Customer) ContactInfo() ContactInfo { return c.contactInfo }
func (c Customer) IsZero() bool             { return c.contactInfo == nil }
