package repository

import (
	"context"
	"sort"

	"quicksizer/internal/domain/entities"
	"quicksizer/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type questionnaireItem struct {
	SessionID               string   `dynamodbav:"session_id"`
	ID                      int64    `dynamodbav:"id"`
	CompanyName             *string  `dynamodbav:"company_name,omitempty"`
	Industry                string   `dynamodbav:"industry"`
	DataSize                string   `dynamodbav:"data_size"`
	DeveloperCount          int      `dynamodbav:"developer_count"`
	RequiredFunctionalities []string `dynamodbav:"required_functionalities"`
	DeploymentPreference    string   `dynamodbav:"deployment_preference"`
	MonthlyDataVolumeGB     string   `dynamodbav:"monthly_data_volume_gb"`
	ConcurrentUsers         int      `dynamodbav:"concurrent_users"`
	ComplianceRequirements  bool     `dynamodbav:"compliance_requirements"`
	HighAvailabilityNeeded  bool     `dynamodbav:"high_availability_needed"`
	CreatedAt               string   `dynamodbav:"created_at"`
}

// QuestionnaireDynamoRepository persists Questionnaire entities in DynamoDB.
//
// Table requirements:
//   - PK: session_id (string)
//
// The session id is the partition key so the conditional put enforces one questionnaire
// per session. The numeric id comes from the counters table.
type QuestionnaireDynamoRepository struct {
	ddb          DynamoAPI
	tableName    string
	counterTable string
}

var _ interfaces.IQuestionnaireRepository = (*QuestionnaireDynamoRepository)(nil)

func NewQuestionnaireDynamoRepository(ddb DynamoAPI, tableName, counterTable string) *QuestionnaireDynamoRepository {
	return &QuestionnaireDynamoRepository{
		ddb:          ddb,
		tableName:    tableName,
		counterTable: counterTable,
	}
}

func (r *QuestionnaireDynamoRepository) Create(ctx context.Context, q entities.Questionnaire) (entities.Questionnaire, error) {
	id, err := nextID(ctx, r.ddb, r.counterTable, questionnaireCounter)
	if err != nil {
		return entities.Questionnaire{}, err
	}
	q.ID = id

	av, err := attributevalue.MarshalMap(toQuestionnaireItem(q))
	if err != nil {
		return entities.Questionnaire{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sid)"),
		ExpressionAttributeNames: map[string]string{
			"#sid": "session_id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Questionnaire{}, interfaces.ErrConflict
		}
		return entities.Questionnaire{}, err
	}
	return q, nil
}

func (r *QuestionnaireDynamoRepository) GetBySessionID(ctx context.Context, sessionID string) (entities.Questionnaire, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Questionnaire{}, err
	}
	if len(out.Item) == 0 {
		return entities.Questionnaire{}, nil
	}

	var it questionnaireItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Questionnaire{}, err
	}
	return fromQuestionnaireItem(it), nil
}

// List scans the whole table; ordering happens in memory.
func (r *QuestionnaireDynamoRepository) List(ctx context.Context) ([]entities.Questionnaire, error) {
	items := make([]entities.Questionnaire, 0)
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it questionnaireItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromQuestionnaireItem(it))
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
	return items, nil
}

func toQuestionnaireItem(q entities.Questionnaire) questionnaireItem {
	functionalities := make([]string, len(q.RequiredFunctionalities))
	for i, f := range q.RequiredFunctionalities {
		functionalities[i] = string(f)
	}
	return questionnaireItem{
		SessionID:               q.SessionID,
		ID:                      q.ID,
		CompanyName:             q.CompanyName,
		Industry:                string(q.Industry),
		DataSize:                string(q.DataSize),
		DeveloperCount:          q.DeveloperCount,
		RequiredFunctionalities: functionalities,
		DeploymentPreference:    string(q.DeploymentPreference),
		MonthlyDataVolumeGB:     q.MonthlyDataVolumeGB.String(),
		ConcurrentUsers:         q.ConcurrentUsers,
		ComplianceRequirements:  q.ComplianceRequirements,
		HighAvailabilityNeeded:  q.HighAvailabilityNeeded,
		CreatedAt:               formatTime(q.CreatedAt),
	}
}

func fromQuestionnaireItem(it questionnaireItem) entities.Questionnaire {
	functionalities := make([]entities.Functionality, len(it.RequiredFunctionalities))
	for i, f := range it.RequiredFunctionalities {
		functionalities[i] = entities.Functionality(f)
	}
	return entities.Questionnaire{
		ID:                      it.ID,
		SessionID:               it.SessionID,
		CompanyName:             it.CompanyName,
		Industry:                entities.Industry(it.Industry),
		DataSize:                entities.DataSize(it.DataSize),
		DeveloperCount:          it.DeveloperCount,
		RequiredFunctionalities: functionalities,
		DeploymentPreference:    entities.Deployment(it.DeploymentPreference),
		MonthlyDataVolumeGB:     parseDecimal(it.MonthlyDataVolumeGB),
		ConcurrentUsers:         it.ConcurrentUsers,
		ComplianceRequirements:  it.ComplianceRequirements,
		HighAvailabilityNeeded:  it.HighAvailabilityNeeded,
		CreatedAt:               parseTime(it.CreatedAt),
	}
}
