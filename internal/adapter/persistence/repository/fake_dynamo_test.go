package repository

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory DynamoAPI keyed by each table's partition key.
type fakeDynamo struct {
	mu       sync.Mutex
	keys     map[string]string
	tables   map[string]map[string]map[string]types.AttributeValue
	counters map[string]int64
	err      error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{
		keys: map[string]string{
			"questionnaires": "session_id",
			"estimates":      "questionnaire_id",
		},
		tables:   map[string]map[string]map[string]types.AttributeValue{},
		counters: map[string]int64{},
	}
}

func keyString(av types.AttributeValue) string {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return "S:" + v.Value
	case *types.AttributeValueMemberN:
		return "N:" + v.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	table := aws.ToString(in.TableName)
	k := keyString(in.Item[f.keys[table]])
	if f.tables[table] == nil {
		f.tables[table] = map[string]map[string]types.AttributeValue{}
	}
	if _, exists := f.tables[table][k]; exists && in.ConditionExpression != nil {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	}
	f.tables[table][k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	table := aws.ToString(in.TableName)
	item := f.tables[table][keyString(in.Key[f.keys[table]])]
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	name, ok := in.Key["name"].(*types.AttributeValueMemberS)
	if !ok {
		return nil, errors.New("fake: only counters support UpdateItem")
	}
	f.counters[name.Value]++
	return &dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{
		"value": &types.AttributeValueMemberN{Value: strconv.FormatInt(f.counters[name.Value], 10)},
	}}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := &dynamodb.ScanOutput{}
	for _, item := range f.tables[aws.ToString(in.TableName)] {
		out.Items = append(out.Items, item)
	}
	return out, nil
}
