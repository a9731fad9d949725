package risk

import (
	"fmt"

	"onboarding/internal/customer/domain"
	"onboarding/internal/customer/models"
)

// Score applies model to a validated customer.
// This is pure domain logic - no I/O, no side effects.
//
// Rule priority:
//  1. A score configured for the customer's contact shape
//  2. The model baseline
//  3. MEDIUM when the model sets neither
func Score(customer domain.Customer, model models.RiskModel) models.RiskScore {
	if score, ok := model.ByContact[customer.ContactInfo().Kind()]; ok && score.IsValid() {
		return score
	}
	if model.Baseline.IsValid() {
		return model.Baseline
	}
	return models.RiskMedium
}

// Validate rejects models carrying unknown scores. An empty baseline is
// allowed and scores MEDIUM.
func Validate(model models.RiskModel) error {
	if model.Baseline != "" && !model.Baseline.IsValid() {
		return fmt.Errorf("%w: unknown baseline %q", ErrBadModel, model.Baseline)
	}
	for kind, score := range model.ByContact {
		if !score.IsValid() {
			return fmt.Errorf("%w: unknown score %q for %s", ErrBadModel, score, kind)
		}
	}
	return nil
}
