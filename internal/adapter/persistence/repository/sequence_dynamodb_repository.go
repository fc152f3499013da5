package repository

import (
	"context"
	"errors"
	"strconv"

	"controlimport/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCountersTableName = "counters"

var ErrCounterNotFound = errors.New("counter not found")

// SequenceCounterDynamoRepository implements the shared import-code counter
// on a DynamoDB table of single-attribute counter rows.
//
// Table requirements:
//   - PK: id (string)
//
// IncrementAndGet relies on DynamoDB's atomic ADD, so concurrent creates can
// never draw the same sequence.
type SequenceCounterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISequenceCounterRepository = (*SequenceCounterDynamoRepository)(nil)

func NewSequenceCounterDynamoRepository(ddb *dynamodb.Client) *SequenceCounterDynamoRepository {
	return &SequenceCounterDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *SequenceCounterDynamoRepository) CurrentValue(ctx context.Context, counterID string) (int, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: counterID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Item) == 0 {
		return 0, ErrCounterNotFound
	}

	n, ok := out.Item["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("counter row carries no numeric seq attribute")
	}
	return strconv.Atoi(n.Value)
}

func (r *SequenceCounterDynamoRepository) SetValue(ctx context.Context, counterID string, value int) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: counterID},
		},
		UpdateExpression: aws.String("SET #seq = :value"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":value": &types.AttributeValueMemberN{Value: intToString(value)},
		},
	})
	return err
}

func (r *SequenceCounterDynamoRepository) IncrementAndGet(ctx context.Context, counterID string) (int, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: counterID},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	n, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("counter increment returned no seq attribute")
	}
	return strconv.Atoi(n.Value)
}

func intToString(v int) string {
	return strconv.Itoa(v)
}
