package pricing

import (
	"quicksizer/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// RateCard holds every price constant the engine uses. All amounts are monthly.
type RateCard struct {
	BaseCost    map[entities.DataSize]decimal.Decimal
	StorageRate map[entities.DataSize]decimal.Decimal // per GB

	PerDeveloper      decimal.Decimal
	PerConcurrentUser decimal.Decimal

	Functionality map[entities.Functionality]decimal.Decimal

	Compliance decimal.Decimal

	SupportStandard         decimal.Decimal
	SupportHighAvailability decimal.Decimal
	SupportMultiplier       map[entities.Deployment]decimal.Decimal

	// AnnualFactor turns a monthly total into the discounted annual total (12 * 0.9).
	AnnualFactor decimal.Decimal
}

// DefaultRateCard is the canonical rate card.
func DefaultRateCard() RateCard {
	return RateCard{
		BaseCost: map[entities.DataSize]decimal.Decimal{
			entities.DataSizeSmall:      decimal.NewFromInt(500),
			entities.DataSizeMedium:     decimal.NewFromInt(1000),
			entities.DataSizeLarge:      decimal.NewFromInt(2000),
			entities.DataSizeEnterprise: decimal.NewFromInt(5000),
		},
		StorageRate: map[entities.DataSize]decimal.Decimal{
			entities.DataSizeSmall:      decimal.RequireFromString("0.10"),
			entities.DataSizeMedium:     decimal.RequireFromString("0.10"),
			entities.DataSizeLarge:      decimal.RequireFromString("0.05"),
			entities.DataSizeEnterprise: decimal.RequireFromString("0.03"),
		},
		PerDeveloper:      decimal.NewFromInt(150),
		PerConcurrentUser: decimal.NewFromInt(10),
		Functionality: map[entities.Functionality]decimal.Decimal{
			entities.FunctionalityETL:             decimal.NewFromInt(300),
			entities.FunctionalityDataWarehousing: decimal.NewFromInt(500),
			entities.FunctionalityML:              decimal.NewFromInt(800),
			entities.FunctionalityAnalytics:       decimal.NewFromInt(400),
			entities.FunctionalityRealTime:        decimal.NewFromInt(600),
		},
		Compliance:              decimal.NewFromInt(1000),
		SupportStandard:         decimal.NewFromInt(500),
		SupportHighAvailability: decimal.NewFromInt(1500),
		SupportMultiplier: map[entities.Deployment]decimal.Decimal{
			entities.DeploymentCloud:     decimal.NewFromInt(1),
			entities.DeploymentOnPremise: decimal.RequireFromString("1.5"),
			entities.DeploymentHybrid:    decimal.RequireFromString("1.3"),
		},
		AnnualFactor: decimal.NewFromInt(12).Mul(decimal.RequireFromString("0.9")),
	}
}

// baseCost falls back to the small tier for an unknown data size.
func (r RateCard) baseCost(size entities.DataSize) decimal.Decimal {
	if v, ok := r.BaseCost[size]; ok {
		return v
	}
	return r.BaseCost[entities.DataSizeSmall]
}

func (r RateCard) storageRate(size entities.DataSize) decimal.Decimal {
	if v, ok := r.StorageRate[size]; ok {
		return v
	}
	return r.StorageRate[entities.DataSizeSmall]
}

// supportMultiplier treats an unknown deployment like cloud.
func (r RateCard) supportMultiplier(d entities.Deployment) decimal.Decimal {
	if v, ok := r.SupportMultiplier[d]; ok {
		return v
	}
	return decimal.NewFromInt(1)
}
