package database

import (
	"context"
	"errors"
	"fmt"

	appconfig "quicksizer/internal/config"
	"quicksizer/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ConnectDynamoDB creates a DynamoDB client. A non-empty Endpoint points it at
// DynamoDB Local (e.g. http://dynamodb:8000).
func ConnectDynamoDB(ctx context.Context, cfg appconfig.DynamoDBConfig) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

func NewAWSConfig(ctx context.Context, cfg appconfig.DynamoDBConfig) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// TableCreator is the subset of *dynamodb.Client EnsureTables needs.
type TableCreator interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

type tableSpec struct {
	name    string
	key     string
	keyType types.ScalarAttributeType
}

// EnsureTables creates the questionnaires, estimates and counters tables when missing.
func EnsureTables(ctx context.Context, ddb TableCreator, cfg appconfig.DynamoDBConfig, log *logger.Logger) error {
	specs := []tableSpec{
		{name: cfg.QuestionnaireTable, key: "session_id", keyType: types.ScalarAttributeTypeS},
		{name: cfg.EstimateTable, key: "questionnaire_id", keyType: types.ScalarAttributeTypeN},
		{name: cfg.CounterTable, key: "name", keyType: types.ScalarAttributeTypeS},
	}
	for _, s := range specs {
		_, err := ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
			TableName: aws.String(s.name),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String(s.key), AttributeType: s.keyType},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(s.key), KeyType: types.KeyTypeHash},
			},
			BillingMode: types.BillingModePayPerRequest,
		})
		var inUse *types.ResourceInUseException
		switch {
		case err == nil:
			log.Info("table created", "table", s.name)
		case errors.As(err, &inUse):
			log.Debug("table already exists", "table", s.name)
		default:
			return fmt.Errorf("create table %s: %w", s.name, err)
		}
	}
	return nil
}
