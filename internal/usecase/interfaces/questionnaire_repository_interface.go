package interfaces

import (
	"context"
	"quicksizer/internal/domain/entities"
)

//go:generate mockgen -source=questionnaire_repository_interface.go -destination=mocks/questionnaire_repository_mock.go -package=mock_interfaces

// IQuestionnaireRepository abstracts the Questionnaire Store.
//
// Lookups return a zero-value Questionnaire (ID == 0) and a nil error when nothing matches.
type IQuestionnaireRepository interface {
	// Create assigns ID and returns ErrConflict when the session id is taken.
	Create(ctx context.Context, q entities.Questionnaire) (entities.Questionnaire, error)
	GetBySessionID(ctx context.Context, sessionID string) (entities.Questionnaire, error)
	// List returns every questionnaire, most recently created first.
	List(ctx context.Context) ([]entities.Questionnaire, error)
}
