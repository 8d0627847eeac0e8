package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"quicksizer/internal/domain/entities"
	"quicksizer/internal/domain/pricing"
	"quicksizer/internal/usecase/interfaces"
	mock_interfaces "quicksizer/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type estimateDeps struct {
	questionnaires *mock_interfaces.MockIQuestionnaireRepository
	estimates      *mock_interfaces.MockIEstimateRepository
	engine         *mock_interfaces.MockIPricingEngine
	uc             *EstimateUseCase
}

func newEstimateDeps(t *testing.T) estimateDeps {
	ctrl := gomock.NewController(t)
	d := estimateDeps{
		questionnaires: mock_interfaces.NewMockIQuestionnaireRepository(ctrl),
		estimates:      mock_interfaces.NewMockIEstimateRepository(ctrl),
		engine:         mock_interfaces.NewMockIPricingEngine(ctrl),
	}
	d.uc = NewEstimateUseCase(d.questionnaires, d.estimates, d.engine, nil)
	return d
}

func storedQuestionnaire() entities.Questionnaire {
	q := entities.NewQuestionnaire(validInput("s-1"), time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	q.ID = 9
	return q
}

func TestEstimateUseCase_Resolve(t *testing.T) {
	t.Run("blank session is not found", func(t *testing.T) {
		d := newEstimateDeps(t)
		res, err := d.uc.Resolve(context.Background(), " ")
		if err != nil || res != nil {
			t.Fatalf("expected nil, nil; got %v, %v", res, err)
		}
	})

	t.Run("unknown session is not found", func(t *testing.T) {
		d := newEstimateDeps(t)
		d.questionnaires.EXPECT().GetBySessionID(gomock.Any(), "nope").Return(entities.Questionnaire{}, nil)

		res, err := d.uc.Resolve(context.Background(), "nope")
		if err != nil || res != nil {
			t.Fatalf("expected nil, nil; got %v, %v", res, err)
		}
	})

	t.Run("questionnaire lookup error", func(t *testing.T) {
		d := newEstimateDeps(t)
		d.questionnaires.EXPECT().GetBySessionID(gomock.Any(), "s-1").Return(entities.Questionnaire{}, errors.New("db"))

		if _, err := d.uc.Resolve(context.Background(), "s-1"); !errors.Is(err, ErrStorageFailure) {
			t.Fatalf("expected ErrStorageFailure, got %v", err)
		}
	})

	t.Run("existing estimate is returned without recomputing", func(t *testing.T) {
		d := newEstimateDeps(t)
		q := storedQuestionnaire()
		stored := entities.Estimate{ID: 5, QuestionnaireID: q.ID, TotalMonthlyCost: decimal.NewFromInt(3460)}

		d.questionnaires.EXPECT().GetBySessionID(gomock.Any(), "s-1").Return(q, nil)
		d.estimates.EXPECT().GetByQuestionnaireID(gomock.Any(), q.ID).Return(stored, nil)

		res, err := d.uc.Resolve(context.Background(), "s-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Estimation.ID != 5 || res.Questionnaire.ID != q.ID {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("missing estimate is computed and stored", func(t *testing.T) {
		d := newEstimateDeps(t)
		fixed := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		d.uc.clock = func() time.Time { return fixed }
		q := storedQuestionnaire()

		d.questionnaires.EXPECT().GetBySessionID(gomock.Any(), "s-1").Return(q, nil)
		d.estimates.EXPECT().GetByQuestionnaireID(gomock.Any(), q.ID).Return(entities.Estimate{}, nil)
		d.engine.EXPECT().Calculate(gomock.Any()).DoAndReturn(pricing.NewEngine().Calculate)
		d.estimates.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.QuestionnaireID != q.ID || !e.CreatedAt.Equal(fixed) {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				if !e.TotalMonthlyCost.Equal(decimal.NewFromInt(3460)) {
					t.Fatalf("unexpected monthly total: %s", e.TotalMonthlyCost)
				}
				e.ID = 77
				return e, nil
			},
		)

		res, err := d.uc.Resolve(context.Background(), "s-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Estimation.ID != 77 || !res.Estimation.TotalAnnualCost.Equal(decimal.NewFromInt(37368)) {
			t.Fatalf("unexpected estimation: %+v", res.Estimation)
		}
	})

	t.Run("lost race re-reads the winner", func(t *testing.T) {
		d := newEstimateDeps(t)
		q := storedQuestionnaire()
		winner := entities.Estimate{ID: 1, QuestionnaireID: q.ID, TotalMonthlyCost: decimal.NewFromInt(3460)}

		d.questionnaires.EXPECT().GetBySessionID(gomock.Any(), "s-1").Return(q, nil)
		gomock.InOrder(
			d.estimates.EXPECT().GetByQuestionnaireID(gomock.Any(), q.ID).Return(entities.Estimate{}, nil),
			d.estimates.EXPECT().GetByQuestionnaireID(gomock.Any(), q.ID).Return(winner, nil),
		)
		d.engine.EXPECT().Calculate(gomock.Any()).Return(entities.Estimate{ID: 0})
		d.estimates.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, interfaces.ErrConflict)

		res, err := d.uc.Resolve(context.Background(), "s-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Estimation.ID != winner.ID {
			t.Fatalf("expected the winner's estimate, got %+v", res.Estimation)
		}
	})

	t.Run("conflict without a winner is a storage failure", func(t *testing.T) {
		d := newEstimateDeps(t)
		q := storedQuestionnaire()

		d.questionnaires.EXPECT().GetBySessionID(gomock.Any(), "s-1").Return(q, nil)
		d.estimates.EXPECT().GetByQuestionnaireID(gomock.Any(), q.ID).Return(entities.Estimate{}, nil).Times(2)
		d.engine.EXPECT().Calculate(gomock.Any()).Return(entities.Estimate{})
		d.estimates.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, interfaces.ErrConflict)

		if _, err := d.uc.Resolve(context.Background(), "s-1"); !errors.Is(err, ErrStorageFailure) {
			t.Fatalf("expected ErrStorageFailure, got %v", err)
		}
	})

	t.Run("create error", func(t *testing.T) {
		d := newEstimateDeps(t)
		q := storedQuestionnaire()
		dbErr := errors.New("throttled")

		d.questionnaires.EXPECT().GetBySessionID(gomock.Any(), "s-1").Return(q, nil)
		d.estimates.EXPECT().GetByQuestionnaireID(gomock.Any(), q.ID).Return(entities.Estimate{}, nil)
		d.engine.EXPECT().Calculate(gomock.Any()).Return(entities.Estimate{})
		d.estimates.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, dbErr)

		_, err := d.uc.Resolve(context.Background(), "s-1")
		if !errors.Is(err, ErrStorageFailure) || !errors.Is(err, dbErr) {
			t.Fatalf("expected wrapped storage failure, got %v", err)
		}
	})

	t.Run("second resolve returns identical estimate", func(t *testing.T) {
		d := newEstimateDeps(t)
		q := storedQuestionnaire()
		var stored entities.Estimate

		d.questionnaires.EXPECT().GetBySessionID(gomock.Any(), "s-1").Return(q, nil).Times(2)
		d.estimates.EXPECT().GetByQuestionnaireID(gomock.Any(), q.ID).DoAndReturn(
			func(context.Context, int64) (entities.Estimate, error) { return stored, nil },
		).Times(2)
		d.engine.EXPECT().Calculate(gomock.Any()).DoAndReturn(pricing.NewEngine().Calculate).Times(1)
		d.estimates.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				e.ID = 1
				stored = e
				return e, nil
			},
		)

		first, err := d.uc.Resolve(context.Background(), "s-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := d.uc.Resolve(context.Background(), "s-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Estimation.ID != second.Estimation.ID ||
			!first.Estimation.TotalMonthlyCost.Equal(second.Estimation.TotalMonthlyCost) ||
			!first.Estimation.TotalAnnualCost.Equal(second.Estimation.TotalAnnualCost) ||
			!first.Estimation.CreatedAt.Equal(second.Estimation.CreatedAt) {
			t.Fatalf("resolve is not idempotent: %+v vs %+v", first.Estimation, second.Estimation)
		}
	})
}

func TestEstimateUseCase_GetByQuestionnaireID(t *testing.T) {
	t.Run("non-positive id is not found", func(t *testing.T) {
		d := newEstimateDeps(t)
		e, err := d.uc.GetByQuestionnaireID(context.Background(), 0)
		if err != nil || e != nil {
			t.Fatalf("expected nil, nil; got %v, %v", e, err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		d := newEstimateDeps(t)
		d.estimates.EXPECT().GetByQuestionnaireID(gomock.Any(), int64(4)).Return(entities.Estimate{}, nil)

		e, err := d.uc.GetByQuestionnaireID(context.Background(), 4)
		if err != nil || e != nil {
			t.Fatalf("expected nil, nil; got %v, %v", e, err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		d := newEstimateDeps(t)
		d.estimates.EXPECT().GetByQuestionnaireID(gomock.Any(), int64(4)).Return(entities.Estimate{}, errors.New("db"))

		if _, err := d.uc.GetByQuestionnaireID(context.Background(), 4); !errors.Is(err, ErrStorageFailure) {
			t.Fatalf("expected ErrStorageFailure, got %v", err)
		}
	})

	t.Run("success does not compute", func(t *testing.T) {
		d := newEstimateDeps(t)
		d.estimates.EXPECT().GetByQuestionnaireID(gomock.Any(), int64(4)).Return(entities.Estimate{ID: 2, QuestionnaireID: 4}, nil)

		e, err := d.uc.GetByQuestionnaireID(context.Background(), 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e == nil || e.ID != 2 {
			t.Fatalf("unexpected estimate: %+v", e)
		}
	})
}
