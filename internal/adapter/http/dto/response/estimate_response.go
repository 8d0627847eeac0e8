package response

import (
	"encoding/json"
	"time"

	"quicksizer/internal/domain/entities"
)

// CostLineResponse is one breakdown entry; SharePercent is its part of the monthly total.
type CostLineResponse struct {
	Label        string      `json:"label"`
	Amount       json.Number `json:"amount" swaggertype:"number"`
	SharePercent json.Number `json:"share_percent" swaggertype:"number"`
}

type EstimateResponse struct {
	ID                int64                  `json:"id"`
	QuestionnaireID   int64                  `json:"questionnaire_id"`
	BaseCost          json.Number            `json:"base_cost" swaggertype:"number"`
	DataStorageCost   json.Number            `json:"data_storage_cost" swaggertype:"number"`
	ComputeCost       json.Number            `json:"compute_cost" swaggertype:"number"`
	FunctionalityCost json.Number            `json:"functionality_cost" swaggertype:"number"`
	ComplianceCost    json.Number            `json:"compliance_cost" swaggertype:"number"`
	SupportCost       json.Number            `json:"support_cost" swaggertype:"number"`
	TotalMonthlyCost  json.Number            `json:"total_monthly_cost" swaggertype:"number"`
	TotalAnnualCost   json.Number            `json:"total_annual_cost" swaggertype:"number"`
	CostBreakdown     map[string]json.Number `json:"cost_breakdown" swaggertype:"object,number"`
	Breakdown         []CostLineResponse     `json:"breakdown"`
	Recommendations   []string               `json:"recommendations"`
	CreatedAt         time.Time              `json:"created_at"`
}

type CostResultResponse struct {
	Questionnaire QuestionnaireResponse `json:"questionnaire"`
	Estimation    EstimateResponse      `json:"estimation"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	byLabel := make(map[string]json.Number, len(e.CostBreakdown))
	lines := make([]CostLineResponse, 0, len(e.CostBreakdown))
	for _, l := range e.CostBreakdown {
		byLabel[l.Label] = money(l.Amount)
		lines = append(lines, CostLineResponse{
			Label:        l.Label,
			Amount:       money(l.Amount),
			SharePercent: money(e.CostBreakdown.Share(l.Label, e.TotalMonthlyCost)),
		})
	}
	recommendations := e.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}
	return EstimateResponse{
		ID:                e.ID,
		QuestionnaireID:   e.QuestionnaireID,
		BaseCost:          money(e.BaseCost),
		DataStorageCost:   money(e.DataStorageCost),
		ComputeCost:       money(e.ComputeCost),
		FunctionalityCost: money(e.FunctionalityCost),
		ComplianceCost:    money(e.ComplianceCost),
		SupportCost:       money(e.SupportCost),
		TotalMonthlyCost:  money(e.TotalMonthlyCost),
		TotalAnnualCost:   money(e.TotalAnnualCost),
		CostBreakdown:     byLabel,
		Breakdown:         lines,
		Recommendations:   recommendations,
		CreatedAt:         e.CreatedAt,
	}
}

func FromCostResult(r entities.CostResult) CostResultResponse {
	return CostResultResponse{
		Questionnaire: FromQuestionnaire(r.Questionnaire),
		Estimation:    FromEstimate(r.Estimation),
	}
}
