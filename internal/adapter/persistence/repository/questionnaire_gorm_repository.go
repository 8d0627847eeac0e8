package repository

import (
	"context"
	"errors"

	"quicksizer/internal/domain/entities"
	"quicksizer/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// QuestionnaireGormRepository persists Questionnaire entities in a relational database.
type QuestionnaireGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IQuestionnaireRepository = (*QuestionnaireGormRepository)(nil)

func NewQuestionnaireGormRepository(db *gorm.DB) *QuestionnaireGormRepository {
	return &QuestionnaireGormRepository{db: db}
}

func (r *QuestionnaireGormRepository) Create(ctx context.Context, q entities.Questionnaire) (entities.Questionnaire, error) {
	m := toQuestionnaireModel(q)
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDuplicateKey(err) {
			return entities.Questionnaire{}, interfaces.ErrConflict
		}
		return entities.Questionnaire{}, err
	}
	q.ID = m.ID
	return q, nil
}

func (r *QuestionnaireGormRepository) GetBySessionID(ctx context.Context, sessionID string) (entities.Questionnaire, error) {
	var m questionnaireModel
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Questionnaire{}, nil
	}
	if err != nil {
		return entities.Questionnaire{}, err
	}
	return fromQuestionnaireModel(m)
}

func (r *QuestionnaireGormRepository) List(ctx context.Context) ([]entities.Questionnaire, error) {
	var rows []questionnaireModel
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.Questionnaire, 0, len(rows))
	for _, m := range rows {
		q, err := fromQuestionnaireModel(m)
		if err != nil {
			return nil, err
		}
		items = append(items, q)
	}
	return items, nil
}
