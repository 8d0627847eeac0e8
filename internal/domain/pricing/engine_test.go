package pricing

import (
	"testing"

	"quicksizer/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertMoney(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, d(want).Equal(got), "%s: want %s, got %s", field, want, got)
}

func baseQuestionnaire() entities.Questionnaire {
	return entities.Questionnaire{
		ID:                      7,
		SessionID:               "s-1",
		Industry:                entities.IndustryTechnology,
		DataSize:                entities.DataSizeMedium,
		DeveloperCount:          5,
		RequiredFunctionalities: []entities.Functionality{entities.FunctionalityETL, entities.FunctionalityAnalytics},
		DeploymentPreference:    entities.DeploymentCloud,
		MonthlyDataVolumeGB:     decimal.NewFromInt(100),
		ConcurrentUsers:         50,
	}
}

func TestCalculate_MediumCloudScenario(t *testing.T) {
	est := NewEngine().Calculate(baseQuestionnaire())

	assert.Equal(t, int64(7), est.QuestionnaireID)
	assertMoney(t, "1000", est.BaseCost, "base")
	assertMoney(t, "10", est.DataStorageCost, "storage")
	assertMoney(t, "1250", est.ComputeCost, "compute")
	assertMoney(t, "700", est.FunctionalityCost, "functionality")
	assertMoney(t, "0", est.ComplianceCost, "compliance")
	assertMoney(t, "500", est.SupportCost, "support")
	assertMoney(t, "3460", est.TotalMonthlyCost, "monthly")
	assertMoney(t, "37368", est.TotalAnnualCost, "annual")

	assert.Equal(t, []string{RecommendationReviewUsage}, est.Recommendations)
}

func TestCalculate_EnterpriseOnPremiseScenario(t *testing.T) {
	q := baseQuestionnaire()
	q.DataSize = entities.DataSizeEnterprise
	q.DeploymentPreference = entities.DeploymentOnPremise
	q.HighAvailabilityNeeded = true
	q.ComplianceRequirements = true

	est := NewEngine().Calculate(q)

	assertMoney(t, "5000", est.BaseCost, "base")
	assertMoney(t, "3", est.DataStorageCost, "storage")
	assertMoney(t, "1000", est.ComplianceCost, "compliance")
	assertMoney(t, "2250", est.SupportCost, "support")
	assertMoney(t, "10203", est.TotalMonthlyCost, "monthly")
	assertMoney(t, "110192.4", est.TotalAnnualCost, "annual")

	assert.Equal(t, []string{
		RecommendationReviewUsage,
		RecommendationAnnualBilling,
		RecommendationEvaluateCloud,
		RecommendationDedicatedInfra,
		RecommendationMultiRegionDeploy,
	}, est.Recommendations)
}

func TestCalculate_SupportMultipliers(t *testing.T) {
	cases := []struct {
		deployment entities.Deployment
		ha         bool
		want       string
	}{
		{entities.DeploymentCloud, false, "500"},
		{entities.DeploymentCloud, true, "1500"},
		{entities.DeploymentHybrid, false, "650"},
		{entities.DeploymentHybrid, true, "1950"},
		{entities.DeploymentOnPremise, false, "750"},
		{entities.DeploymentOnPremise, true, "2250"},
		{"unknown", true, "1500"},
	}
	for _, tc := range cases {
		q := baseQuestionnaire()
		q.DeploymentPreference = tc.deployment
		q.HighAvailabilityNeeded = tc.ha
		assertMoney(t, tc.want, NewEngine().Calculate(q).SupportCost, string(tc.deployment))
	}
}

func TestCalculate_TierTables(t *testing.T) {
	cases := []struct {
		size    entities.DataSize
		base    string
		storage string
	}{
		{entities.DataSizeSmall, "500", "10"},
		{entities.DataSizeMedium, "1000", "10"},
		{entities.DataSizeLarge, "2000", "5"},
		{entities.DataSizeEnterprise, "5000", "3"},
		{"galactic", "500", "10"},
	}
	for _, tc := range cases {
		q := baseQuestionnaire()
		q.DataSize = tc.size
		est := NewEngine().Calculate(q)
		assertMoney(t, tc.base, est.BaseCost, string(tc.size)+" base")
		assertMoney(t, tc.storage, est.DataStorageCost, string(tc.size)+" storage")
	}
}

func TestCalculate_FunctionalityEdgeCases(t *testing.T) {
	engine := NewEngine()

	t.Run("empty set prices to zero", func(t *testing.T) {
		q := baseQuestionnaire()
		q.RequiredFunctionalities = nil
		est := engine.Calculate(q)
		assertMoney(t, "0", est.FunctionalityCost, "functionality")
		assertMoney(t, "2760", est.TotalMonthlyCost, "monthly")
	})

	t.Run("unknown tag contributes zero", func(t *testing.T) {
		q := baseQuestionnaire()
		q.RequiredFunctionalities = []entities.Functionality{entities.FunctionalityML, "quantum"}
		assertMoney(t, "800", engine.Calculate(q).FunctionalityCost, "functionality")
	})

	t.Run("duplicates are counted once", func(t *testing.T) {
		q := baseQuestionnaire()
		q.RequiredFunctionalities = []entities.Functionality{
			entities.FunctionalityETL, entities.FunctionalityETL, entities.FunctionalityETL,
		}
		est := engine.Calculate(q)
		assertMoney(t, "300", est.FunctionalityCost, "functionality")
		assert.NotContains(t, est.Recommendations, RecommendationPhasedRollout)
	})

	t.Run("all five", func(t *testing.T) {
		q := baseQuestionnaire()
		q.RequiredFunctionalities = []entities.Functionality{
			entities.FunctionalityETL, entities.FunctionalityDataWarehousing, entities.FunctionalityML,
			entities.FunctionalityAnalytics, entities.FunctionalityRealTime,
		}
		assertMoney(t, "2600", engine.Calculate(q).FunctionalityCost, "functionality")
	})
}

func TestCalculate_PhasedRecommendationIffMoreThanTwo(t *testing.T) {
	all := []entities.Functionality{
		entities.FunctionalityETL, entities.FunctionalityDataWarehousing, entities.FunctionalityML,
		entities.FunctionalityAnalytics, entities.FunctionalityRealTime,
	}
	for n := 1; n <= len(all); n++ {
		q := baseQuestionnaire()
		q.RequiredFunctionalities = all[:n]
		recs := NewEngine().Calculate(q).Recommendations
		if n > 2 {
			assert.Containsf(t, recs, RecommendationPhasedRollout, "n=%d", n)
		} else {
			assert.NotContainsf(t, recs, RecommendationPhasedRollout, "n=%d", n)
		}
	}
}

func TestCalculate_RecommendationTriggers(t *testing.T) {
	t.Run("storage dominant", func(t *testing.T) {
		q := baseQuestionnaire()
		q.DataSize = entities.DataSizeSmall
		q.MonthlyDataVolumeGB = decimal.NewFromInt(50000)
		est := NewEngine().Calculate(q)
		assert.Contains(t, est.Recommendations, RecommendationRetentionPolicy)
		assert.Contains(t, est.Recommendations, RecommendationAnnualBilling)
	})

	t.Run("finance compliance", func(t *testing.T) {
		q := baseQuestionnaire()
		q.Industry = entities.IndustryFinance
		q.ComplianceRequirements = true
		assert.Contains(t, NewEngine().Calculate(q).Recommendations, RecommendationQuarterlyAudits)

		q.ComplianceRequirements = false
		assert.NotContains(t, NewEngine().Calculate(q).Recommendations, RecommendationQuarterlyAudits)
	})

	t.Run("concurrency threshold is strict", func(t *testing.T) {
		q := baseQuestionnaire()
		q.ConcurrentUsers = 1000
		assert.NotContains(t, NewEngine().Calculate(q).Recommendations, RecommendationLoadBalancing)
		q.ConcurrentUsers = 1001
		assert.Contains(t, NewEngine().Calculate(q).Recommendations, RecommendationLoadBalancing)
	})

	t.Run("baseline always first", func(t *testing.T) {
		q := baseQuestionnaire()
		q.ConcurrentUsers = 5000
		recs := NewEngine().Calculate(q).Recommendations
		require.NotEmpty(t, recs)
		assert.Equal(t, RecommendationReviewUsage, recs[0])
	})
}

func TestCalculate_TotalsInvariants(t *testing.T) {
	volumes := []string{"0.01", "1", "33.33", "123.456", "999.99", "250000"}
	sizes := []entities.DataSize{entities.DataSizeSmall, entities.DataSizeMedium, entities.DataSizeLarge, entities.DataSizeEnterprise}
	deployments := []entities.Deployment{entities.DeploymentCloud, entities.DeploymentHybrid, entities.DeploymentOnPremise}

	for _, v := range volumes {
		for _, size := range sizes {
			for _, dep := range deployments {
				q := baseQuestionnaire()
				q.MonthlyDataVolumeGB = d(v)
				q.DataSize = size
				q.DeploymentPreference = dep
				q.HighAvailabilityNeeded = true
				est := NewEngine().Calculate(q)

				sum := decimal.Sum(est.Components()[0], est.Components()[1:]...)
				require.Truef(t, sum.Equal(est.TotalMonthlyCost), "sum %s != monthly %s", sum, est.TotalMonthlyCost)
				want := est.TotalMonthlyCost.Mul(d("10.8")).Round(2)
				require.Truef(t, want.Equal(est.TotalAnnualCost), "annual %s != %s", est.TotalAnnualCost, want)

				for _, c := range est.Components() {
					require.False(t, c.IsNegative())
					require.LessOrEqual(t, -c.Exponent(), int32(2), "amount %s has sub-cent precision", c)
				}
			}
		}
	}
}

func TestCalculate_Monotonicity(t *testing.T) {
	engine := NewEngine()

	prevStorage := decimal.Zero
	for _, v := range []string{"1", "10", "10.5", "100", "1000", "1000000"} {
		q := baseQuestionnaire()
		q.MonthlyDataVolumeGB = d(v)
		storage := engine.Calculate(q).DataStorageCost
		assert.Truef(t, storage.GreaterThanOrEqual(prevStorage), "volume %s decreased storage", v)
		prevStorage = storage
	}

	prevCompute := decimal.Zero
	for devs := 1; devs <= 50; devs++ {
		q := baseQuestionnaire()
		q.DeveloperCount = devs
		compute := engine.Calculate(q).ComputeCost
		assert.True(t, compute.GreaterThanOrEqual(prevCompute))
		prevCompute = compute
	}
}

func TestCalculate_BreakdownOrderAndDeterminism(t *testing.T) {
	engine := NewEngine()
	q := baseQuestionnaire()

	first := engine.Calculate(q)
	second := engine.Calculate(q)
	assert.Equal(t, first, second)

	assert.Equal(t, []string{
		entities.LabelBasePlatform,
		entities.LabelDataStorage,
		entities.LabelComputeResources,
		entities.LabelFunctionalities,
		entities.LabelCompliance,
		entities.LabelSupport,
	}, first.CostBreakdown.Labels())

	for i, amount := range first.Components() {
		assert.True(t, amount.Equal(first.CostBreakdown[i].Amount))
	}
	assert.True(t, first.ID == 0 && first.CreatedAt.IsZero())
}

func TestCalculate_CustomRateCard(t *testing.T) {
	rates := DefaultRateCard()
	rates.Compliance = decimal.NewFromInt(250)
	q := baseQuestionnaire()
	q.ComplianceRequirements = true
	assertMoney(t, "250", NewEngineWithRates(rates).Calculate(q).ComplianceCost, "compliance")
}
