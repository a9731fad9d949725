package risk

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboarding/internal/customer/domain"
	"onboarding/internal/customer/models"
)

func newCustomer(t *testing.T, email, phone *string) domain.Customer {
	t.Helper()
	now := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	c, err := domain.BuildCustomer(domain.CreateCustomerRequest{
		FirstName:   "Max",
		LastName:    "Mustermann",
		BirthDate:   time.Date(1991, 3, 26, 0, 0, 0, 0, time.UTC),
		Email:       email,
		PhoneNumber: phone,
	}, now)
	require.NoError(t, err)
	return c
}

func strPtr(s string) *string { return &s }

func TestScore(t *testing.T) {
	both := newCustomer(t, strPtr("max.mustermann@n26.com"), strPtr("+43 650 500 33 08"))
	phoneOnly := newCustomer(t, nil, strPtr("+43 650 500 33 08"))

	t.Run("default model scores medium", func(t *testing.T) {
		assert.Equal(t, models.RiskMedium, Score(both, DefaultModel()))
	})

	t.Run("empty model scores medium", func(t *testing.T) {
		assert.Equal(t, models.RiskMedium, Score(both, models.RiskModel{}))
	})

	t.Run("contact shape overrides baseline", func(t *testing.T) {
		model := models.RiskModel{
			Version:  "v2",
			Baseline: models.RiskLow,
			ByContact: map[domain.ContactKind]models.RiskScore{
				domain.ContactPhoneOnly: models.RiskHigh,
			},
		}
		assert.Equal(t, models.RiskHigh, Score(phoneOnly, model))
		assert.Equal(t, models.RiskLow, Score(both, model))
	})

	t.Run("unknown score in model is ignored", func(t *testing.T) {
		model := models.RiskModel{
			Baseline:  models.RiskScore("EXTREME"),
			ByContact: map[domain.ContactKind]models.RiskScore{domain.ContactBoth: "??"},
		}
		assert.Equal(t, models.RiskMedium, Score(both, model))
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		model := DefaultModel()
		assert.Equal(t, Score(both, model), Score(both, model))
	})
}

func TestStaticProvider(t *testing.T) {
	p := NewStaticProvider(DefaultModel())
	model, err := p.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultModelVersion, model.Version)
	assert.Equal(t, models.RiskMedium, model.Baseline)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(DefaultModel()))
	assert.NoError(t, Validate(models.RiskModel{Version: "empty"}))
	assert.NoError(t, Validate(models.RiskModel{
		Baseline:  models.RiskLow,
		ByContact: map[domain.ContactKind]models.RiskScore{domain.ContactPhoneOnly: models.RiskHigh},
	}))

	assert.ErrorIs(t, Validate(models.RiskModel{Baseline: "low"}), ErrBadModel)
	assert.ErrorIs(t, Validate(models.RiskModel{
		ByContact: map[domain.ContactKind]models.RiskScore{domain.ContactBoth: ""},
	}), ErrBadModel)
}
