package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Industry string

const (
	IndustryFinance       Industry = "finance"
	IndustryHealthcare    Industry = "healthcare"
	IndustryRetail        Industry = "retail"
	IndustryManufacturing Industry = "manufacturing"
	IndustryTechnology    Industry = "technology"
	IndustryOther         Industry = "other"
)

// DataSize is the ordinal data-volume tier.
type DataSize string

const (
	DataSizeSmall      DataSize = "small"
	DataSizeMedium     DataSize = "medium"
	DataSizeLarge      DataSize = "large"
	DataSizeEnterprise DataSize = "enterprise"
)

type Functionality string

const (
	FunctionalityETL             Functionality = "etl"
	FunctionalityDataWarehousing Functionality = "data_warehousing"
	FunctionalityML              Functionality = "ml"
	FunctionalityAnalytics       Functionality = "analytics"
	FunctionalityRealTime        Functionality = "real_time"
)

type Deployment string

const (
	DeploymentCloud     Deployment = "cloud"
	DeploymentOnPremise Deployment = "on_premise"
	DeploymentHybrid    Deployment = "hybrid"
)

func (i Industry) Valid() bool {
	switch i {
	case IndustryFinance, IndustryHealthcare, IndustryRetail, IndustryManufacturing, IndustryTechnology, IndustryOther:
		return true
	}
	return false
}

func (d DataSize) Valid() bool {
	switch d {
	case DataSizeSmall, DataSizeMedium, DataSizeLarge, DataSizeEnterprise:
		return true
	}
	return false
}

func (f Functionality) Valid() bool {
	switch f {
	case FunctionalityETL, FunctionalityDataWarehousing, FunctionalityML, FunctionalityAnalytics, FunctionalityRealTime:
		return true
	}
	return false
}

func (d Deployment) Valid() bool {
	switch d {
	case DeploymentCloud, DeploymentOnPremise, DeploymentHybrid:
		return true
	}
	return false
}

// Questionnaire is one customer's submitted requirements, immutable once created.
//
// Storage model:
//   - DynamoDB: PK session_id (uniqueness), numeric id from the counters table
//   - Postgres: serial id, unique index on session_id
type Questionnaire struct {
	ID                      int64           `json:"id"`
	SessionID               string          `json:"session_id"`
	CompanyName             *string         `json:"company_name"`
	Industry                Industry        `json:"industry"`
	DataSize                DataSize        `json:"data_size"`
	DeveloperCount          int             `json:"developer_count"`
	RequiredFunctionalities []Functionality `json:"required_functionalities"`
	DeploymentPreference    Deployment      `json:"deployment_preference"`
	MonthlyDataVolumeGB     decimal.Decimal `json:"monthly_data_volume_gb"`
	ConcurrentUsers         int             `json:"concurrent_users"`
	ComplianceRequirements  bool            `json:"compliance_requirements"`
	HighAvailabilityNeeded  bool            `json:"high_availability_needed"`
	CreatedAt               time.Time       `json:"created_at"`
}

// QuestionnaireInput carries the caller-supplied fields of a new Questionnaire.
type QuestionnaireInput struct {
	SessionID               string
	CompanyName             *string
	Industry                Industry
	DataSize                DataSize
	DeveloperCount          int
	RequiredFunctionalities []Functionality
	DeploymentPreference    Deployment
	MonthlyDataVolumeGB     decimal.Decimal
	ConcurrentUsers         int
	ComplianceRequirements  bool
	HighAvailabilityNeeded  bool
}

// Validate reports the first constraint the input violates.
func (in QuestionnaireInput) Validate() error {
	switch {
	case strings.TrimSpace(in.SessionID) == "":
		return &ValidationError{Field: "session_id", Message: "must not be empty"}
	case !in.Industry.Valid():
		return &ValidationError{Field: "industry", Message: "unknown industry " + quote(string(in.Industry))}
	case !in.DataSize.Valid():
		return &ValidationError{Field: "data_size", Message: "unknown data size " + quote(string(in.DataSize))}
	case in.DeveloperCount <= 0:
		return &ValidationError{Field: "developer_count", Message: "must be a positive integer"}
	case len(in.RequiredFunctionalities) == 0:
		return &ValidationError{Field: "required_functionalities", Message: "at least one functionality is required"}
	case !in.DeploymentPreference.Valid():
		return &ValidationError{Field: "deployment_preference", Message: "unknown deployment " + quote(string(in.DeploymentPreference))}
	case !in.MonthlyDataVolumeGB.IsPositive():
		return &ValidationError{Field: "monthly_data_volume_gb", Message: "must be positive"}
	case in.ConcurrentUsers <= 0:
		return &ValidationError{Field: "concurrent_users", Message: "must be a positive integer"}
	}
	for _, f := range in.RequiredFunctionalities {
		if !f.Valid() {
			return &ValidationError{Field: "required_functionalities", Message: "unknown functionality " + quote(string(f))}
		}
	}
	return nil
}

// Normalized trims the session id, turns a blank company name into nil and drops
// repeated functionalities (first occurrence wins).
func (in QuestionnaireInput) Normalized() QuestionnaireInput {
	out := in
	out.SessionID = strings.TrimSpace(in.SessionID)
	if in.CompanyName != nil {
		name := strings.TrimSpace(*in.CompanyName)
		if name == "" {
			out.CompanyName = nil
		} else {
			out.CompanyName = &name
		}
	}
	out.RequiredFunctionalities = DistinctFunctionalities(in.RequiredFunctionalities)
	return out
}

// NewQuestionnaire builds the record to persist; the store assigns ID.
func NewQuestionnaire(in QuestionnaireInput, createdAt time.Time) Questionnaire {
	return Questionnaire{
		SessionID:               in.SessionID,
		CompanyName:             in.CompanyName,
		Industry:                in.Industry,
		DataSize:                in.DataSize,
		DeveloperCount:          in.DeveloperCount,
		RequiredFunctionalities: in.RequiredFunctionalities,
		DeploymentPreference:    in.DeploymentPreference,
		MonthlyDataVolumeGB:     in.MonthlyDataVolumeGB,
		ConcurrentUsers:         in.ConcurrentUsers,
		ComplianceRequirements:  in.ComplianceRequirements,
		HighAvailabilityNeeded:  in.HighAvailabilityNeeded,
		CreatedAt:               createdAt,
	}
}

// DistinctFunctionalities keeps the first occurrence of each tag, in order.
func DistinctFunctionalities(in []Functionality) []Functionality {
	seen := make(map[Functionality]struct{}, len(in))
	out := make([]Functionality, 0, len(in))
	for _, f := range in {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

func quote(s string) string { return "\"" + s + "\"" }
