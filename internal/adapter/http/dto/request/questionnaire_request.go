package request

import (
	"quicksizer/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// QuestionnaireRequest is the payload of POST /v1/questionnaires.
//
// Field-level checks live in the core (entities.QuestionnaireInput.Validate) so every
// caller gets the same rules; binding only rejects malformed JSON.
type QuestionnaireRequest struct {
	SessionID               string          `json:"session_id" example:"3f8e9a52-5d1c-4c1e-9f0e-1f1a4b2c9d10"`
	CompanyName             *string         `json:"company_name" example:"Acme Corp"`
	Industry                string          `json:"industry" example:"technology"`
	DataSize                string          `json:"data_size" example:"medium"`
	DeveloperCount          int             `json:"developer_count" example:"5"`
	RequiredFunctionalities []string        `json:"required_functionalities" example:"etl,analytics"`
	DeploymentPreference    string          `json:"deployment_preference" example:"cloud"`
	MonthlyDataVolumeGB     decimal.Decimal `json:"monthly_data_volume_gb" swaggertype:"number" example:"100"`
	ConcurrentUsers         int             `json:"concurrent_users" example:"50"`
	ComplianceRequirements  bool            `json:"compliance_requirements"`
	HighAvailabilityNeeded  bool            `json:"high_availability_needed"`
}

func (r QuestionnaireRequest) ToInput() entities.QuestionnaireInput {
	functionalities := make([]entities.Functionality, len(r.RequiredFunctionalities))
	for i, f := range r.RequiredFunctionalities {
		functionalities[i] = entities.Functionality(f)
	}
	return entities.QuestionnaireInput{
		SessionID:               r.SessionID,
		CompanyName:             r.CompanyName,
		Industry:                entities.Industry(r.Industry),
		DataSize:                entities.DataSize(r.DataSize),
		DeveloperCount:          r.DeveloperCount,
		RequiredFunctionalities: functionalities,
		DeploymentPreference:    entities.Deployment(r.DeploymentPreference),
		MonthlyDataVolumeGB:     r.MonthlyDataVolumeGB,
		ConcurrentUsers:         r.ConcurrentUsers,
		ComplianceRequirements:  r.ComplianceRequirements,
		HighAvailabilityNeeded:  r.HighAvailabilityNeeded,
	}
}
