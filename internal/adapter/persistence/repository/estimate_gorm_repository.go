package repository

import (
	"context"
	"errors"

	"quicksizer/internal/domain/entities"
	"quicksizer/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// EstimateGormRepository persists Estimate entities in a relational database.
// The unique index on questionnaire_id keeps it at one estimate per questionnaire.
type EstimateGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IEstimateRepository = (*EstimateGormRepository)(nil)

func NewEstimateGormRepository(db *gorm.DB) *EstimateGormRepository {
	return &EstimateGormRepository{db: db}
}

func (r *EstimateGormRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	m := toEstimateModel(e)
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDuplicateKey(err) {
			return entities.Estimate{}, interfaces.ErrConflict
		}
		return entities.Estimate{}, err
	}
	e.ID = m.ID
	return e, nil
}

func (r *EstimateGormRepository) GetByQuestionnaireID(ctx context.Context, questionnaireID int64) (entities.Estimate, error) {
	var m estimateModel
	err := r.db.WithContext(ctx).Where("questionnaire_id = ?", questionnaireID).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Estimate{}, nil
	}
	if err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateModel(m)
}
