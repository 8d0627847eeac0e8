package repository

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"quicksizer/internal/domain/entities"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type questionnaireModel struct {
	ID                      int64           `gorm:"primaryKey;autoIncrement"`
	SessionID               string          `gorm:"size:255;not null;uniqueIndex"`
	CompanyName             *string         `gorm:"size:255"`
	Industry                string          `gorm:"size:32;not null"`
	DataSize                string          `gorm:"size:32;not null"`
	DeveloperCount          int             `gorm:"not null"`
	RequiredFunctionalities datatypes.JSON  `gorm:"not null"`
	DeploymentPreference    string          `gorm:"size:32;not null"`
	MonthlyDataVolumeGB     decimal.Decimal `gorm:"type:numeric;not null"`
	ConcurrentUsers         int             `gorm:"not null"`
	ComplianceRequirements  bool            `gorm:"not null"`
	HighAvailabilityNeeded  bool            `gorm:"not null"`
	CreatedAt               time.Time       `gorm:"not null;index"`
}

func (questionnaireModel) TableName() string { return "questionnaires" }

type estimateModel struct {
	ID                int64           `gorm:"primaryKey;autoIncrement"`
	QuestionnaireID   int64           `gorm:"not null;uniqueIndex"`
	BaseCost          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DataStorageCost   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ComputeCost       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	FunctionalityCost decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ComplianceCost    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	SupportCost       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalMonthlyCost  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalAnnualCost   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CostBreakdown     datatypes.JSON  `gorm:"not null"`
	Recommendations   datatypes.JSON  `gorm:"not null"`
	CreatedAt         time.Time       `gorm:"not null"`
}

func (estimateModel) TableName() string { return "estimates" }

// AutoMigrate creates or updates the relational schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&questionnaireModel{}, &estimateModel{})
}

func toJSON(v any) datatypes.JSON {
	b, _ := json.Marshal(v)
	return datatypes.JSON(b)
}

// isDuplicateKey covers drivers that do not translate their unique violations.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

func toQuestionnaireModel(q entities.Questionnaire) questionnaireModel {
	functionalities := q.RequiredFunctionalities
	if functionalities == nil {
		functionalities = []entities.Functionality{}
	}
	return questionnaireModel{
		ID:                      q.ID,
		SessionID:               q.SessionID,
		CompanyName:             q.CompanyName,
		Industry:                string(q.Industry),
		DataSize:                string(q.DataSize),
		DeveloperCount:          q.DeveloperCount,
		RequiredFunctionalities: toJSON(functionalities),
		DeploymentPreference:    string(q.DeploymentPreference),
		MonthlyDataVolumeGB:     q.MonthlyDataVolumeGB,
		ConcurrentUsers:         q.ConcurrentUsers,
		ComplianceRequirements:  q.ComplianceRequirements,
		HighAvailabilityNeeded:  q.HighAvailabilityNeeded,
		CreatedAt:               q.CreatedAt.UTC(),
	}
}

func fromQuestionnaireModel(m questionnaireModel) (entities.Questionnaire, error) {
	var functionalities []entities.Functionality
	if err := json.Unmarshal(m.RequiredFunctionalities, &functionalities); err != nil {
		return entities.Questionnaire{}, err
	}
	return entities.Questionnaire{
		ID:                      m.ID,
		SessionID:               m.SessionID,
		CompanyName:             m.CompanyName,
		Industry:                entities.Industry(m.Industry),
		DataSize:                entities.DataSize(m.DataSize),
		DeveloperCount:          m.DeveloperCount,
		RequiredFunctionalities: functionalities,
		DeploymentPreference:    entities.Deployment(m.DeploymentPreference),
		MonthlyDataVolumeGB:     m.MonthlyDataVolumeGB,
		ConcurrentUsers:         m.ConcurrentUsers,
		ComplianceRequirements:  m.ComplianceRequirements,
		HighAvailabilityNeeded:  m.HighAvailabilityNeeded,
		CreatedAt:               m.CreatedAt.UTC(),
	}, nil
}

func toEstimateModel(e entities.Estimate) estimateModel {
	breakdown := e.CostBreakdown
	if breakdown == nil {
		breakdown = entities.CostBreakdown{}
	}
	recommendations := e.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}
	return estimateModel{
		ID:                e.ID,
		QuestionnaireID:   e.QuestionnaireID,
		BaseCost:          e.BaseCost,
		DataStorageCost:   e.DataStorageCost,
		ComputeCost:       e.ComputeCost,
		FunctionalityCost: e.FunctionalityCost,
		ComplianceCost:    e.ComplianceCost,
		SupportCost:       e.SupportCost,
		TotalMonthlyCost:  e.TotalMonthlyCost,
		TotalAnnualCost:   e.TotalAnnualCost,
		CostBreakdown:     toJSON(breakdown),
		Recommendations:   toJSON(recommendations),
		CreatedAt:         e.CreatedAt.UTC(),
	}
}

func fromEstimateModel(m estimateModel) (entities.Estimate, error) {
	var breakdown entities.CostBreakdown
	if err := json.Unmarshal(m.CostBreakdown, &breakdown); err != nil {
		return entities.Estimate{}, err
	}
	recommendations := []string{}
	if err := json.Unmarshal(m.Recommendations, &recommendations); err != nil {
		return entities.Estimate{}, err
	}
	return entities.Estimate{
		ID:                m.ID,
		QuestionnaireID:   m.QuestionnaireID,
		BaseCost:          m.BaseCost,
		DataStorageCost:   m.DataStorageCost,
		ComputeCost:       m.ComputeCost,
		FunctionalityCost: m.FunctionalityCost,
		ComplianceCost:    m.ComplianceCost,
		SupportCost:       m.SupportCost,
		TotalMonthlyCost:  m.TotalMonthlyCost,
		TotalAnnualCost:   m.TotalAnnualCost,
		CostBreakdown:     breakdown,
		Recommendations:   recommendations,
		CreatedAt:         m.CreatedAt.UTC(),
	}, nil
}
