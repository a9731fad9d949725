package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"onboarding/internal/customer/domain"
)

type ValueObjectsSuite struct {
	suite.Suite
	now time.Time
}

func TestValueObjectsSuite(t *testing.T) {
	suite.Run(t, new(ValueObjectsSuite))
}

func (s *ValueObjectsSuite) SetupTest() {
	s.now = time.Date(2026, 10, 16, 9, 41, 37, 0, time.UTC)
}

func (s *ValueObjectsSuite) TestFullLegalAge() {
	s.Run("accepts birth date 30 years ago unchanged", func() {
		birthDate := s.now.AddDate(-30, 0, 0)
		age, err := domain.NewFullLegalAge(birthDate, s.now)
		s.Require().NoError(err)
		s.Equal(birthDate, age.BirthDate())
	})

	s.Run("accepts one day before the threshold", func() {
		birthDate := time.Date(2008, 10, 15, 0, 0, 0, 0, time.UTC)
		_, err := domain.NewFullLegalAge(birthDate, s.now)
		s.NoError(err)
	})

	s.Run("rejects exactly 18 years", func() {
		birthDate := time.Date(2008, 10, 16, 0, 0, 0, 0, time.UTC)
		_, err := domain.NewFullLegalAge(birthDate, s.now)
		s.ErrorIs(err, domain.ErrInvalidBirthDate)
	})

	s.Run("rejects 18 years minus one day", func() {
		birthDate := time.Date(2008, 10, 17, 0, 0, 0, 0, time.UTC)
		_, err := domain.NewFullLegalAge(birthDate, s.now)
		s.ErrorIs(err, domain.ErrInvalidBirthDate)
	})

	s.Run("rejects birth date 10 years ago", func() {
		_, err := domain.NewFullLegalAge(s.now.AddDate(-10, 0, 0), s.now)
		s.ErrorIs(err, domain.ErrInvalidBirthDate)
	})

	s.Run("rejects birth date in the future", func() {
		_, err := domain.NewFullLegalAge(s.now.AddDate(20, 0, 0), s.now)
		s.ErrorIs(err, domain.ErrInvalidBirthDate)
	})

	s.Run("ignores time of day", func() {
		birthDate := time.Date(2008, 10, 16, 0, 0, 0, 0, time.UTC)
		lateNow := time.Date(2026, 10, 16, 23, 59, 59, 0, time.UTC)
		_, err := domain.NewFullLegalAge(birthDate, lateNow)
		s.ErrorIs(err, domain.ErrInvalidBirthDate)
	})

	s.Run("leap day threshold clamps to Feb 28", func() {
		leapNow := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)
		_, err := domain.NewFullLegalAge(time.Date(2006, 2, 28, 0, 0, 0, 0, time.UTC), leapNow)
		s.ErrorIs(err, domain.ErrInvalidBirthDate)

		_, err = domain.NewFullLegalAge(time.Date(2006, 2, 27, 0, 0, 0, 0, time.UTC), leapNow)
		s.NoError(err)
	})

	s.Run("is idempotent for the same clock value", func() {
		birthDate := s.now.AddDate(-25, 0, 0)
		first, err1 := domain.NewFullLegalAge(birthDate, s.now)
		second, err2 := domain.NewFullLegalAge(birthDate, s.now)
		s.Equal(err1, err2)
		s.Equal(first, second)
	})
}

func (s *ValueObjectsSuite) TestFullLegalAgeMust() {
	s.Run("panics on underage birth date", func() {
		s.Panics(func() {
			domain.MustFullLegalAge(s.now, s.now)
		})
	})

	s.Run("zero value is zero", func() {
		var age domain.FullLegalAge
		s.True(age.IsZero())
	})
}

func (s *ValueObjectsSuite) TestEmailAddress() {
	valid := []string{
		"stefan.sevelda@gmail.com",
		"max.mustermann@n26.com",
		"a+tag@sub.example.org",
		"UPPER_case%x@EXAMPLE.AT",
	}
	for _, raw := range valid {
		s.Run("accepts "+raw, func() {
			email, err := domain.NewEmailAddress(raw)
			s.Require().NoError(err)
			s.Equal(raw, email.String())
		})
	}

	invalid := []string{
		"",
		"not_a_email",
		"@gmail.com",
		"stefan@gmail",
		"stefan@gmail.c0m",
		"stefan@@gmail.com",
		" stefan@gmail.com",
		"stefan@gmail.com ",
		"stefan sevelda@gmail.com",
		"prefix stefan@gmail.com suffix",
	}
	for _, raw := range invalid {
		s.Run("rejects "+raw, func() {
			_, err := domain.NewEmailAddress(raw)
			s.ErrorIs(err, domain.ErrInvalidEmail)
		})
	}
}

func (s *ValueObjectsSuite) TestPhoneNumber() {
	valid := []string{
		"+43 650 500 50 55",
		"+43 650 500 55 55",
		"(0650) 500-50.55",
		"0043/650/5005055",
		"+(43)6505005055",
		"1",
		"+43\v650",
		"0650\t500\f55\r\n55",
	}
	for _, raw := range valid {
		s.Run("accepts "+raw, func() {
			phone, err := domain.NewPhoneNumber(raw)
			s.Require().NoError(err)
			s.Equal(raw, phone.String())
		})
	}

	invalid := []string{
		"",
		"not a phone number",
		"+43 650 ABC",
		"(12345) 500",
		"43 650 500 55 55 ext. 1",
		"+",
		"+43\u00a0650",
	}
	for _, raw := range invalid {
		s.Run("rejects "+raw, func() {
			_, err := domain.NewPhoneNumber(raw)
			s.ErrorIs(err, domain.ErrInvalidPhoneNumber)
		})
	}
}

func (s *ValueObjectsSuite) TestErrorKinds() {
	s.Run("kind is recoverable from error", func() {
		kind, ok := domain.KindOf(domain.ErrNoContactData)
		s.True(ok)
		s.Equal(domain.KindNoContactData, kind)
	})

	s.Run("errors with the same kind match", func() {
		s.ErrorIs(domain.Error{Kind: domain.KindInvalidEmail}, domain.ErrInvalidEmail)
		s.NotErrorIs(domain.ErrInvalidEmail, domain.ErrInvalidPhoneNumber)
	})

	s.Run("foreign errors carry no kind", func() {
		_, ok := domain.KindOf(assertionError("boom"))
		s.False(ok)
		s.False(domain.IsValidationError(assertionError("boom")))
	})
}

type assertionError string

func (e assertionError) Error() string { return string(e) }
