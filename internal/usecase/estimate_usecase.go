package usecase

import (
	"context"
	"errors"
	"fmt"
	"quicksizer/internal/domain/entities"
	"quicksizer/internal/usecase/interfaces"
	"quicksizer/pkg/logger"
	"strings"
	"time"
)

//go:generate mockgen -source=estimate_usecase.go -destination=../adapter/http/handlers/mocks/estimate_usecase_mock.go -package=mocks

// IEstimateUseCase exposes the estimate operations of the core boundary:
//   - getEstimateByQuestionnaireId => GetByQuestionnaireID()
//   - resolveCostResult => Resolve()
type IEstimateUseCase interface {
	GetByQuestionnaireID(ctx context.Context, questionnaireID int64) (*entities.Estimate, error)
	Resolve(ctx context.Context, sessionID string) (*entities.CostResult, error)
}

// EstimateUseCase is a read-through cache over the pricing engine: the first Resolve for a
// questionnaire computes and stores its estimate, every later call returns the stored one.
type EstimateUseCase struct {
	questionnaires interfaces.IQuestionnaireRepository
	estimates      interfaces.IEstimateRepository
	engine         interfaces.IPricingEngine
	log            *logger.Logger
	clock          func() time.Time
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	questionnaires interfaces.IQuestionnaireRepository,
	estimates interfaces.IEstimateRepository,
	engine interfaces.IPricingEngine,
	log *logger.Logger,
) *EstimateUseCase {
	if log == nil {
		log = logger.NewNop()
	}
	return &EstimateUseCase{
		questionnaires: questionnaires,
		estimates:      estimates,
		engine:         engine,
		log:            log.With("usecase", "EstimateUseCase"),
		clock:          func() time.Time { return time.Now().UTC() },
	}
}

// GetByQuestionnaireID never computes; it returns nil when no estimate was stored yet.
func (u *EstimateUseCase) GetByQuestionnaireID(ctx context.Context, questionnaireID int64) (*entities.Estimate, error) {
	if questionnaireID <= 0 {
		return nil, nil
	}
	e, err := u.estimates.GetByQuestionnaireID(ctx, questionnaireID)
	if err != nil {
		return nil, storageFailure("get estimate", err)
	}
	if e.ID == 0 {
		return nil, nil
	}
	return &e, nil
}

// Resolve returns nil for an unknown session.
func (u *EstimateUseCase) Resolve(ctx context.Context, sessionID string) (*entities.CostResult, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, nil
	}

	q, err := u.questionnaires.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, storageFailure("get questionnaire by session", err)
	}
	if q.ID == 0 {
		u.log.Debug("resolve: unknown session", "session_id", sessionID)
		return nil, nil
	}

	existing, err := u.estimates.GetByQuestionnaireID(ctx, q.ID)
	if err != nil {
		return nil, storageFailure("get estimate", err)
	}
	if existing.ID != 0 {
		return &entities.CostResult{Questionnaire: q, Estimation: existing}, nil
	}

	est := u.engine.Calculate(q)
	est.QuestionnaireID = q.ID
	est.CreatedAt = u.clock()

	created, err := u.estimates.Create(ctx, est)
	if err == nil {
		u.log.Info("estimate computed",
			"questionnaire_id", q.ID,
			"estimate_id", created.ID,
			"total_monthly_cost", created.TotalMonthlyCost.StringFixed(2),
		)
		return &entities.CostResult{Questionnaire: q, Estimation: created}, nil
	}
	if !errors.Is(err, interfaces.ErrConflict) {
		u.log.Error("estimate create failed", "questionnaire_id", q.ID, "error", err)
		return nil, storageFailure("create estimate", err)
	}

	// Another request stored an estimate between our read and our write; theirs wins.
	u.log.Info("estimate create lost race, re-reading", "questionnaire_id", q.ID)
	winner, err := u.estimates.GetByQuestionnaireID(ctx, q.ID)
	if err != nil {
		return nil, storageFailure("re-read estimate", err)
	}
	if winner.ID == 0 {
		return nil, fmt.Errorf("%w: estimate for questionnaire %d missing after conflict", ErrStorageFailure, q.ID)
	}
	return &entities.CostResult{Questionnaire: q, Estimation: winner}, nil
}
