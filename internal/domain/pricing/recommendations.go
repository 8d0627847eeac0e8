package pricing

import (
	"quicksizer/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	RecommendationReviewUsage       = "Review usage patterns monthly to optimize costs"
	RecommendationAnnualBilling     = "Consider annual billing for 10% discount on total costs"
	RecommendationRetentionPolicy   = "Data storage represents a large portion of costs - consider data retention policies"
	RecommendationPhasedRollout     = "Multiple functionalities selected - consider phased implementation to spread costs"
	RecommendationEvaluateCloud     = "On-premise deployment increases support costs - evaluate cloud options for savings"
	RecommendationQuarterlyAudits   = "Financial compliance requires additional security measures - budget for quarterly audits"
	RecommendationLoadBalancing     = "High user concurrency - consider load balancing and caching strategies"
	RecommendationDedicatedInfra    = "Consider dedicated infrastructure for enterprise-scale deployments"
	RecommendationMultiRegionDeploy = "Set up multi-region deployment for high availability"
)

var (
	annualBillingThreshold = decimal.NewFromInt(5000)
	storageShareThreshold  = decimal.RequireFromString("0.3")
)

const (
	phasedRolloutMinFunctionalities = 3
	highConcurrencyUsers            = 1000
)

type facts struct {
	questionnaire   entities.Questionnaire
	functionalities []entities.Functionality
	storage         decimal.Decimal
	monthly         decimal.Decimal
}

type rule struct {
	text string
	when func(f facts) bool
}

// rules are evaluated in order; every rule that holds contributes its text.
var rules = []rule{
	{RecommendationReviewUsage, func(facts) bool { return true }},
	{RecommendationAnnualBilling, func(f facts) bool { return f.monthly.GreaterThan(annualBillingThreshold) }},
	{RecommendationRetentionPolicy, func(f facts) bool { return f.storage.GreaterThan(f.monthly.Mul(storageShareThreshold)) }},
	{RecommendationPhasedRollout, func(f facts) bool { return len(f.functionalities) >= phasedRolloutMinFunctionalities }},
	{RecommendationEvaluateCloud, func(f facts) bool {
		return f.questionnaire.DeploymentPreference == entities.DeploymentOnPremise
	}},
	{RecommendationQuarterlyAudits, func(f facts) bool {
		return f.questionnaire.ComplianceRequirements && f.questionnaire.Industry == entities.IndustryFinance
	}},
	{RecommendationLoadBalancing, func(f facts) bool { return f.questionnaire.ConcurrentUsers > highConcurrencyUsers }},
	{RecommendationDedicatedInfra, func(f facts) bool { return f.questionnaire.DataSize == entities.DataSizeEnterprise }},
	{RecommendationMultiRegionDeploy, func(f facts) bool { return f.questionnaire.HighAvailabilityNeeded }},
}

func recommend(f facts) []string {
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		if r.when(f) {
			out = append(out, r.text)
		}
	}
	return out
}
