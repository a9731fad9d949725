// Package domain contains the pure domain model for customer onboarding.
//
// A raw CreateCustomerRequest is converted into a Customer whose fields are
// value objects that can only be obtained through their validating
// constructors. Holding a Customer is proof that every business rule held at
// construction time:
//
//   - FullLegalAge: birth date strictly more than 18 years before "now"
//   - EmailAddress: full match of the email grammar
//   - PhoneNumber: full match of the phone grammar
//   - ContactInfo: exactly one of PhoneOnly, EmailOnly or Both; there is no
//     variant without contact data
//
// # Domain Purity
//
//	✓ No I/O
//	✓ No context.Context in function signatures
//	✓ No time.Now() calls - "now" is received as a parameter
//
// Validation composes left to right and stops at the first failure, so every
// failing call reports exactly one ErrorKind.
package domain
