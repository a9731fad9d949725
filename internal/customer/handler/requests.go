package handler

import (
	"errors"
	"strings"
	"time"

	"onboarding/internal/customer/domain"
	"onboarding/internal/customer/models"
)

var errBadBirthDate = errors.New("birth_date must be a calendar date in YYYY-MM-DD form")

// SignupRequest is the JSON body of the signup and validate endpoints.
// Email and phone number are optional; absent and null are the same.
type SignupRequest struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	BirthDate   string  `json:"birth_date"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
}

// ToDomain parses the birth date; every other rule belongs to the domain.
func (r SignupRequest) ToDomain() (domain.CreateCustomerRequest, error) {
	birthDate, err := time.Parse(models.DateLayout, strings.TrimSpace(r.BirthDate))
	if err != nil {
		return domain.CreateCustomerRequest{}, errBadBirthDate
	}
	return domain.CreateCustomerRequest{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		BirthDate:   birthDate,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
	}, nil
}
