package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Breakdown labels, in display order.
const (
	LabelBasePlatform     = "Base Platform"
	LabelDataStorage      = "Data Storage"
	LabelComputeResources = "Compute Resources"
	LabelFunctionalities  = "Functionalities"
	LabelCompliance       = "Compliance"
	LabelSupport          = "Support"
)

// Estimate is the cost estimate derived from exactly one Questionnaire.
//
// Storage model:
//   - DynamoDB: PK questionnaire_id, so a second create for the same questionnaire fails
//     the conditional put
//   - Postgres: serial id, unique index on questionnaire_id
//
// Monetary representation:
//   - every amount is a decimal rounded to cents; TotalMonthlyCost is the exact sum of the
//     six components.
type Estimate struct {
	ID                int64           `json:"id"`
	QuestionnaireID   int64           `json:"questionnaire_id"`
	BaseCost          decimal.Decimal `json:"base_cost"`
	DataStorageCost   decimal.Decimal `json:"data_storage_cost"`
	ComputeCost       decimal.Decimal `json:"compute_cost"`
	FunctionalityCost decimal.Decimal `json:"functionality_cost"`
	ComplianceCost    decimal.Decimal `json:"compliance_cost"`
	SupportCost       decimal.Decimal `json:"support_cost"`
	TotalMonthlyCost  decimal.Decimal `json:"total_monthly_cost"`
	TotalAnnualCost   decimal.Decimal `json:"total_annual_cost"`
	CostBreakdown     CostBreakdown   `json:"cost_breakdown"`
	Recommendations   []string        `json:"recommendations"`
	CreatedAt         time.Time       `json:"created_at"`
}

// CostResult pairs a questionnaire with its estimate.
type CostResult struct {
	Questionnaire Questionnaire `json:"questionnaire"`
	Estimation    Estimate      `json:"estimation"`
}

// CostLine is one labeled entry of a CostBreakdown.
type CostLine struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// CostBreakdown is an ordered label -> amount mapping.
type CostBreakdown []CostLine

func (b CostBreakdown) Get(label string) (decimal.Decimal, bool) {
	for _, l := range b {
		if l.Label == label {
			return l.Amount, true
		}
	}
	return decimal.Zero, false
}

func (b CostBreakdown) Labels() []string {
	out := make([]string, len(b))
	for i, l := range b {
		out[i] = l.Label
	}
	return out
}

// Map loses ordering; use it only for map-shaped outputs.
func (b CostBreakdown) Map() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(b))
	for _, l := range b {
		out[l.Label] = l.Amount
	}
	return out
}

// Share returns the fraction (0..100) that label represents of total, unrounded.
func (b CostBreakdown) Share(label string, total decimal.Decimal) decimal.Decimal {
	amount, ok := b.Get(label)
	if !ok || total.IsZero() {
		return decimal.Zero
	}
	return amount.Div(total).Mul(decimal.NewFromInt(100))
}

// Components returns the six cost components in breakdown order.
func (e Estimate) Components() []decimal.Decimal {
	return []decimal.Decimal{e.BaseCost, e.DataStorageCost, e.ComputeCost, e.FunctionalityCost, e.ComplianceCost, e.SupportCost}
}
