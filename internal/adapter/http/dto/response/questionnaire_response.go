package response

import (
	"encoding/json"
	"time"

	"quicksizer/internal/domain/entities"
)

type QuestionnaireResponse struct {
	ID                      int64       `json:"id"`
	SessionID               string      `json:"session_id"`
	CompanyName             *string     `json:"company_name"`
	Industry                string      `json:"industry"`
	DataSize                string      `json:"data_size"`
	DeveloperCount          int         `json:"developer_count"`
	RequiredFunctionalities []string    `json:"required_functionalities"`
	DeploymentPreference    string      `json:"deployment_preference"`
	MonthlyDataVolumeGB     json.Number `json:"monthly_data_volume_gb" swaggertype:"number"`
	ConcurrentUsers         int         `json:"concurrent_users"`
	ComplianceRequirements  bool        `json:"compliance_requirements"`
	HighAvailabilityNeeded  bool        `json:"high_availability_needed"`
	CreatedAt               time.Time   `json:"created_at"`
}

func FromQuestionnaire(q entities.Questionnaire) QuestionnaireResponse {
	functionalities := make([]string, len(q.RequiredFunctionalities))
	for i, f := range q.RequiredFunctionalities {
		functionalities[i] = string(f)
	}
	var company *string
	if q.CompanyName != nil && *q.CompanyName != "" {
		name := *q.CompanyName
		company = &name
	}
	return QuestionnaireResponse{
		ID:                      q.ID,
		SessionID:               q.SessionID,
		CompanyName:             company,
		Industry:                string(q.Industry),
		DataSize:                string(q.DataSize),
		DeveloperCount:          q.DeveloperCount,
		RequiredFunctionalities: functionalities,
		DeploymentPreference:    string(q.DeploymentPreference),
		MonthlyDataVolumeGB:     number(q.MonthlyDataVolumeGB),
		ConcurrentUsers:         q.ConcurrentUsers,
		ComplianceRequirements:  q.ComplianceRequirements,
		HighAvailabilityNeeded:  q.HighAvailabilityNeeded,
		CreatedAt:               q.CreatedAt,
	}
}

func FromQuestionnaires(items []entities.Questionnaire) []QuestionnaireResponse {
	out := make([]QuestionnaireResponse, 0, len(items))
	for _, q := range items {
		out = append(out, FromQuestionnaire(q))
	}
	return out
}
