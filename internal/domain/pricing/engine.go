// Package pricing turns a questionnaire into a cost estimate.
//
// Calculate is pure: no I/O, no clock, same input gives the same estimate.
package pricing

import (
	"quicksizer/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const centPlaces = 2

type Engine struct {
	rates RateCard
}

func NewEngine() *Engine {
	return &Engine{rates: DefaultRateCard()}
}

func NewEngineWithRates(rates RateCard) *Engine {
	return &Engine{rates: rates}
}

// components are the unrounded amounts the recommendation rules look at.
type components struct {
	base          decimal.Decimal
	storage       decimal.Decimal
	compute       decimal.Decimal
	functionality decimal.Decimal
	compliance    decimal.Decimal
	support       decimal.Decimal
}

func (c components) total() decimal.Decimal {
	return decimal.Sum(c.base, c.storage, c.compute, c.functionality, c.compliance, c.support)
}

// Calculate prices q. ID and CreatedAt of the result are left for the store.
func (e *Engine) Calculate(q entities.Questionnaire) entities.Estimate {
	functionalities := entities.DistinctFunctionalities(q.RequiredFunctionalities)

	raw := components{
		base:          e.rates.baseCost(q.DataSize),
		storage:       q.MonthlyDataVolumeGB.Mul(e.rates.storageRate(q.DataSize)),
		compute:       e.computeCost(q),
		functionality: e.functionalityCost(functionalities),
		compliance:    e.complianceCost(q),
		support:       e.supportCost(q),
	}

	recommendations := recommend(facts{
		questionnaire:   q,
		functionalities: functionalities,
		storage:         raw.storage,
		monthly:         raw.total(),
	})

	est := entities.Estimate{
		QuestionnaireID:   q.ID,
		BaseCost:          raw.base.Round(centPlaces),
		DataStorageCost:   raw.storage.Round(centPlaces),
		ComputeCost:       raw.compute.Round(centPlaces),
		FunctionalityCost: raw.functionality.Round(centPlaces),
		ComplianceCost:    raw.compliance.Round(centPlaces),
		SupportCost:       raw.support.Round(centPlaces),
		Recommendations:   recommendations,
	}
	est.TotalMonthlyCost = decimal.Sum(est.BaseCost, est.DataStorageCost, est.ComputeCost, est.FunctionalityCost, est.ComplianceCost, est.SupportCost)
	est.TotalAnnualCost = est.TotalMonthlyCost.Mul(e.rates.AnnualFactor).Round(centPlaces)
	est.CostBreakdown = entities.CostBreakdown{
		{Label: entities.LabelBasePlatform, Amount: est.BaseCost},
		{Label: entities.LabelDataStorage, Amount: est.DataStorageCost},
		{Label: entities.LabelComputeResources, Amount: est.ComputeCost},
		{Label: entities.LabelFunctionalities, Amount: est.FunctionalityCost},
		{Label: entities.LabelCompliance, Amount: est.ComplianceCost},
		{Label: entities.LabelSupport, Amount: est.SupportCost},
	}
	return est
}

func (e *Engine) computeCost(q entities.Questionnaire) decimal.Decimal {
	devs := e.rates.PerDeveloper.Mul(decimal.NewFromInt(int64(q.DeveloperCount)))
	users := e.rates.PerConcurrentUser.Mul(decimal.NewFromInt(int64(q.ConcurrentUsers)))
	return devs.Add(users)
}

// functionalityCost ignores tags missing from the rate card.
func (e *Engine) functionalityCost(functionalities []entities.Functionality) decimal.Decimal {
	total := decimal.Zero
	for _, f := range functionalities {
		if price, ok := e.rates.Functionality[f]; ok {
			total = total.Add(price)
		}
	}
	return total
}

func (e *Engine) complianceCost(q entities.Questionnaire) decimal.Decimal {
	if q.ComplianceRequirements {
		return e.rates.Compliance
	}
	return decimal.Zero
}

func (e *Engine) supportCost(q entities.Questionnaire) decimal.Decimal {
	base := e.rates.SupportStandard
	if q.HighAvailabilityNeeded {
		base = e.rates.SupportHighAvailability
	}
	return base.Mul(e.rates.supportMultiplier(q.DeploymentPreference))
}
