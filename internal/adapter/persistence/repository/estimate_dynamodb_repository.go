package repository

import (
	"context"
	"strconv"

	"quicksizer/internal/domain/entities"
	"quicksizer/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type costLineItem struct {
	Label  string `dynamodbav:"label"`
	Amount string `dynamodbav:"amount"`
}

type estimateItem struct {
	QuestionnaireID   int64          `dynamodbav:"questionnaire_id"`
	ID                int64          `dynamodbav:"id"`
	BaseCost          string         `dynamodbav:"base_cost"`
	DataStorageCost   string         `dynamodbav:"data_storage_cost"`
	ComputeCost       string         `dynamodbav:"compute_cost"`
	FunctionalityCost string         `dynamodbav:"functionality_cost"`
	ComplianceCost    string         `dynamodbav:"compliance_cost"`
	SupportCost       string         `dynamodbav:"support_cost"`
	TotalMonthlyCost  string         `dynamodbav:"total_monthly_cost"`
	TotalAnnualCost   string         `dynamodbav:"total_annual_cost"`
	CostBreakdown     []costLineItem `dynamodbav:"cost_breakdown"`
	Recommendations   []string       `dynamodbav:"recommendations"`
	CreatedAt         string         `dynamodbav:"created_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: questionnaire_id (number)
//
// We purposely use the questionnaire id as PK to guarantee 1 estimate per questionnaire.
// Amounts are stored as fixed two-decimal strings.
type EstimateDynamoRepository struct {
	ddb          DynamoAPI
	tableName    string
	counterTable string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb DynamoAPI, tableName, counterTable string) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:          ddb,
		tableName:    tableName,
		counterTable: counterTable,
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	id, err := nextID(ctx, r.ddb, r.counterTable, estimateCounter)
	if err != nil {
		return entities.Estimate{}, err
	}
	e.ID = id

	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#qid)"),
		ExpressionAttributeNames: map[string]string{
			"#qid": "questionnaire_id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Estimate{}, interfaces.ErrConflict
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByQuestionnaireID(ctx context.Context, questionnaireID int64) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"questionnaire_id": &types.AttributeValueMemberN{Value: strconv.FormatInt(questionnaireID, 10)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	breakdown := make([]costLineItem, len(e.CostBreakdown))
	for i, l := range e.CostBreakdown {
		breakdown[i] = costLineItem{Label: l.Label, Amount: formatMoney(l.Amount)}
	}
	recommendations := e.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}
	return estimateItem{
		QuestionnaireID:   e.QuestionnaireID,
		ID:                e.ID,
		BaseCost:          formatMoney(e.BaseCost),
		DataStorageCost:   formatMoney(e.DataStorageCost),
		ComputeCost:       formatMoney(e.ComputeCost),
		FunctionalityCost: formatMoney(e.FunctionalityCost),
		ComplianceCost:    formatMoney(e.ComplianceCost),
		SupportCost:       formatMoney(e.SupportCost),
		TotalMonthlyCost:  formatMoney(e.TotalMonthlyCost),
		TotalAnnualCost:   formatMoney(e.TotalAnnualCost),
		CostBreakdown:     breakdown,
		Recommendations:   recommendations,
		CreatedAt:         formatTime(e.CreatedAt),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	breakdown := make(entities.CostBreakdown, len(it.CostBreakdown))
	for i, l := range it.CostBreakdown {
		breakdown[i] = entities.CostLine{Label: l.Label, Amount: parseDecimal(l.Amount)}
	}
	recommendations := it.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}
	return entities.Estimate{
		ID:                it.ID,
		QuestionnaireID:   it.QuestionnaireID,
		BaseCost:          parseDecimal(it.BaseCost),
		DataStorageCost:   parseDecimal(it.DataStorageCost),
		ComputeCost:       parseDecimal(it.ComputeCost),
		FunctionalityCost: parseDecimal(it.FunctionalityCost),
		ComplianceCost:    parseDecimal(it.ComplianceCost),
		SupportCost:       parseDecimal(it.SupportCost),
		TotalMonthlyCost:  parseDecimal(it.TotalMonthlyCost),
		TotalAnnualCost:   parseDecimal(it.TotalAnnualCost),
		CostBreakdown:     breakdown,
		Recommendations:   recommendations,
		CreatedAt:         parseTime(it.CreatedAt),
	}
}
