package repository

import (
	"context"
	"errors"

	"controlimport/internal/domain/entities"
	"controlimport/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProcessesTableName = "import_processes"
	processesSequenceIndex    = "sequence-index"
)

// processDoc is the stored shape: the full entity plus a denormalized
// numeric sequence attribute feeding the conflict-check GSI. DynamoDB has no
// substring matching worth leaning on, so the sequence is promoted to its
// own key instead of being fished out of the code string.
type processDoc struct {
	entities.Process
	Sequence int `dynamodbav:"sequence"`
}

// ProcessDynamoRepository persists Process documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: sequence-index (PK: sequence, number)
type ProcessDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProcessRepository = (*ProcessDynamoRepository)(nil)

func NewProcessDynamoRepository(ddb *dynamodb.Client) *ProcessDynamoRepository {
	return &ProcessDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROCESSES_TABLE", defaultProcessesTableName),
	}
}

func (r *ProcessDynamoRepository) Create(ctx context.Context, p entities.Process) (entities.Process, error) {
	av, err := marshalProcess(p)
	if err != nil {
		return entities.Process{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Process{}, err
	}
	return p, nil
}

func (r *ProcessDynamoRepository) Save(ctx context.Context, p entities.Process) (entities.Process, error) {
	av, err := marshalProcess(p)
	if err != nil {
		return entities.Process{}, err
	}

	// Full-document replace: the usecase always works from a fresh load and
	// recomputes derived state, so last-writer-wins is acceptable here.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Process{}, err
	}
	return p, nil
}

func (r *ProcessDynamoRepository) GetByID(ctx context.Context, id string) (entities.Process, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Process{}, err
	}
	if len(out.Item) == 0 {
		return entities.Process{}, nil
	}

	var doc processDoc
	if err := attributevalue.UnmarshalMap(out.Item, &doc); err != nil {
		return entities.Process{}, err
	}
	return doc.Process, nil
}

func (r *ProcessDynamoRepository) List(ctx context.Context) ([]entities.Process, error) {
	processes := []entities.Process{}
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var doc processDoc
			if err := attributevalue.UnmarshalMap(raw, &doc); err != nil {
				return nil, err
			}
			processes = append(processes, doc.Process)
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return processes, nil
}

func (r *ProcessDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *ProcessDynamoRepository) ExistsBySequence(ctx context.Context, seq int) (bool, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(processesSequenceIndex),
		KeyConditionExpression: aws.String("#seq = :seq"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "sequence",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":seq": &types.AttributeValueMemberN{Value: intToString(seq)},
		},
		Select: types.SelectCount,
		Limit:  aws.Int32(1),
	})
	if err != nil {
		return false, err
	}
	return out.Count > 0, nil
}

func marshalProcess(p entities.Process) (map[string]types.AttributeValue, error) {
	seq, ok := entities.ExtractSequence(p.ImportCode)
	if !ok {
		return nil, errors.New("import code carries no sequence")
	}
	return attributevalue.MarshalMap(processDoc{Process: p, Sequence: seq})
}
