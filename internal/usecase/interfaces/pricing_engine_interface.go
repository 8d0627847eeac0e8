package interfaces

import "quicksizer/internal/domain/entities"

//go:generate mockgen -source=pricing_engine_interface.go -destination=mocks/pricing_engine_mock.go -package=mock_interfaces

// IPricingEngine derives an estimate from a questionnaire without side effects.
type IPricingEngine interface {
	Calculate(q entities.Questionnaire) entities.Estimate
}
