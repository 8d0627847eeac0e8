package repository

import (
	"time"

	"quicksizer/internal/domain/entities"
	"quicksizer/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

func sampleQuestionnaire(sessionID string, createdAt time.Time) entities.Questionnaire {
	company := "Acme"
	return entities.Questionnaire{
		SessionID:               sessionID,
		CompanyName:             &company,
		Industry:                entities.IndustryFinance,
		DataSize:                entities.DataSizeLarge,
		DeveloperCount:          12,
		RequiredFunctionalities: []entities.Functionality{entities.FunctionalityML, entities.FunctionalityETL},
		DeploymentPreference:    entities.DeploymentHybrid,
		MonthlyDataVolumeGB:     decimal.RequireFromString("2500.5"),
		ConcurrentUsers:         300,
		ComplianceRequirements:  true,
		HighAvailabilityNeeded:  false,
		CreatedAt:               createdAt,
	}
}

func sampleEstimate(questionnaireID int64, createdAt time.Time) entities.Estimate {
	q := sampleQuestionnaire("s-est", createdAt)
	q.ID = questionnaireID
	e := pricing.NewEngine().Calculate(q)
	e.CreatedAt = createdAt
	return e
}
