package usecase

import (
	"context"
	"errors"
	"quicksizer/internal/domain/entities"
	"quicksizer/internal/usecase/interfaces"
	"quicksizer/pkg/logger"
	"strings"
	"time"
)

//go:generate mockgen -source=questionnaire_usecase.go -destination=../adapter/http/handlers/mocks/questionnaire_usecase_mock.go -package=mocks

// IQuestionnaireUseCase exposes the questionnaire operations of the core boundary:
//   - createQuestionnaire => Create()
//   - getQuestionnaireBySession => GetBySessionID()
//   - listQuestionnaires => List()
type IQuestionnaireUseCase interface {
	Create(ctx context.Context, in entities.QuestionnaireInput) (entities.Questionnaire, error)
	GetBySessionID(ctx context.Context, sessionID string) (*entities.Questionnaire, error)
	List(ctx context.Context) ([]entities.Questionnaire, error)
}

type QuestionnaireUseCase struct {
	repo  interfaces.IQuestionnaireRepository
	log   *logger.Logger
	clock func() time.Time
}

var _ IQuestionnaireUseCase = (*QuestionnaireUseCase)(nil)

func NewQuestionnaireUseCase(repo interfaces.IQuestionnaireRepository, log *logger.Logger) *QuestionnaireUseCase {
	if log == nil {
		log = logger.NewNop()
	}
	return &QuestionnaireUseCase{
		repo:  repo,
		log:   log.With("usecase", "QuestionnaireUseCase"),
		clock: func() time.Time { return time.Now().UTC() },
	}
}

// Create validates and stores a questionnaire. Nothing is persisted when validation fails.
func (u *QuestionnaireUseCase) Create(ctx context.Context, in entities.QuestionnaireInput) (entities.Questionnaire, error) {
	in = in.Normalized()
	if err := in.Validate(); err != nil {
		u.log.Debug("questionnaire rejected", "session_id", in.SessionID, "error", err)
		return entities.Questionnaire{}, err
	}

	created, err := u.repo.Create(ctx, entities.NewQuestionnaire(in, u.clock()))
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			u.log.Info("duplicate questionnaire session", "session_id", in.SessionID)
			return entities.Questionnaire{}, ErrDuplicateSession
		}
		u.log.Error("questionnaire create failed", "session_id", in.SessionID, "error", err)
		return entities.Questionnaire{}, storageFailure("create questionnaire", err)
	}

	u.log.Info("questionnaire created", "questionnaire_id", created.ID, "session_id", created.SessionID)
	return created, nil
}

// GetBySessionID returns nil when no questionnaire matches.
func (u *QuestionnaireUseCase) GetBySessionID(ctx context.Context, sessionID string) (*entities.Questionnaire, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, nil
	}

	q, err := u.repo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, storageFailure("get questionnaire by session", err)
	}
	if q.ID == 0 {
		return nil, nil
	}
	return &q, nil
}

// List returns every questionnaire, newest first. The result is never nil.
func (u *QuestionnaireUseCase) List(ctx context.Context) ([]entities.Questionnaire, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, storageFailure("list questionnaires", err)
	}
	if items == nil {
		items = []entities.Questionnaire{}
	}
	return items, nil
}
