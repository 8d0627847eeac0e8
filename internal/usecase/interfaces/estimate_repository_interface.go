package interfaces

import (
	"context"
	"quicksizer/internal/domain/entities"
)

//go:generate mockgen -source=estimate_repository_interface.go -destination=mocks/estimate_repository_mock.go -package=mock_interfaces

// IEstimateRepository abstracts the Estimation Store.
//
// There is no update path: an estimate is written once per questionnaire and read forever after.
type IEstimateRepository interface {
	// Create assigns ID and returns ErrConflict when the questionnaire already has an estimate.
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	// GetByQuestionnaireID returns a zero-value Estimate (ID == 0) when none exists.
	GetByQuestionnaireID(ctx context.Context, questionnaireID int64) (entities.Estimate, error)
}
