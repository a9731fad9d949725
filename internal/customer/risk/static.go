package risk

import (
	"context"

	"onboarding/internal/customer/models"
)

// DefaultModelVersion identifies the built-in model.
const DefaultModelVersion = "static-v1"

// DefaultModel scores every customer MEDIUM.
func DefaultModel() models.RiskModel {
	return models.RiskModel{
		Version:  DefaultModelVersion,
		Baseline: models.RiskMedium,
	}
}

// StaticProvider always returns the same model. It never fails.
type StaticProvider struct {
	model models.RiskModel
}

// NewStaticProvider creates a provider serving model.
func NewStaticProvider(model models.RiskModel) *StaticProvider {
	return &StaticProvider{model: model}
}

// Fetch returns the configured model.
func (p *StaticProvider) Fetch(_ context.Context) (models.RiskModel, error) {
	return p.model, nil
}
