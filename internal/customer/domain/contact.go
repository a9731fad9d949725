package domain

// ContactKind names the shape of a ContactInfo.
type ContactKind string

const (
	ContactPhoneOnly ContactKind = "phone_only"
	ContactEmailOnly ContactKind = "email_only"
	ContactBoth      ContactKind = "both"
)

// ContactInfo is a closed sum type: PhoneOnly, EmailOnly or Both. There is
// no variant without contact data; missing contact data is only ever a
// validation failure (ErrNoContactData).
type ContactInfo interface {
	Kind() ContactKind
	contactInfo()
}

// PhoneOnly is contact info with a phone number and no email address.
type PhoneOnly struct {
	Phone PhoneNumber
}

// EmailOnly is contact info with an email address and no phone number.
type EmailOnly struct {
	Email EmailAddress
}

// Both is contact info with an email address and a phone number.
type Both struct {
	Email EmailAddress
	Phone PhoneNumber
}

func (PhoneOnly) Kind() ContactKind { return ContactPhoneOnly }
func (EmailOnly) Kind() ContactKind { return ContactEmailOnly }
func (Both) Kind() ContactKind      { return ContactBoth }

func (PhoneOnly) contactInfo() {}
func (EmailOnly) contactInfo() {}
func (Both) contactInfo()      {}

// EmailOf returns the email address carried by c, if any.
func EmailOf(c ContactInfo) (EmailAddress, bool) {
	switch v := c.(type) {
	case EmailOnly:
		return v.Email, true
	case Both:
		return v.Email, true
	}
	return EmailAddress{}, false
}

// PhoneOf returns the phone number carried by c, if any.
func PhoneOf(c ContactInfo) (PhoneNumber, bool) {
	switch v := c.(type) {
	case PhoneOnly:
		return v.Phone, true
	case Both:
		return v.Phone, true
	}
	return PhoneNumber{}, false
}

// ClassifyContactInfo validates the optional phone and email strings and
// combines them into a ContactInfo.
//
// The phone number is validated first, so a malformed phone is reported even
// when the email is malformed too.
func ClassifyContactInfo(phone, email *string) (ContactInfo, error) {
	var validPhone *PhoneNumber
	if phone != nil {
		p, err := NewPhoneNumber(*phone)
		if err != nil {
			return nil, err
		}
		validPhone = &p
	}

	var validEmail *EmailAddress
	if email != nil {
		e, err := NewEmailAddress(*email)
		if err != nil {
			return nil, err
		}
		validEmail = &e
	}

	switch {
	case validPhone != nil && validEmail != nil:
		return Both{Email: *validEmail, Phone: *validPhone}, nil
	case validPhone != nil:
		return PhoneOnly{Phone: *validPhone}, nil
	case validEmail != nil:
		return EmailOnly{Email: *validEmail}, nil
	default:
		return nil, ErrNoContactData
	}
}
