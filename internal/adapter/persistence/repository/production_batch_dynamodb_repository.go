package repository

import (
	"context"

	"umkm_produksi/internal/domain/entities"
	"umkm_produksi/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

const (
	defaultProductionBatchesTableName = "production_batches"
	maxTransactItems                  = 100
)

var ErrTooManyAllocations = errors.New("batch has more ingredient allocations than one transaction can hold")

type allocationItem struct {
	IngredientID    string  `dynamodbav:"ingredient_id"`
	IngredientName  string  `dynamodbav:"ingredient_name"`
	PlannedQuantity float64 `dynamodbav:"planned_quantity"`
	Unit            string  `dynamodbav:"unit"`
	CostPerUnit     float64 `dynamodbav:"cost_per_unit"`
	TotalCost       float64 `dynamodbav:"total_cost"`
}

type productionBatchItem struct {
	ID                       string           `dynamodbav:"id"`
	BatchNumber              string           `dynamodbav:"batch_number"`
	RecipeID                 string           `dynamodbav:"recipe_id"`
	RecipeName               string           `dynamodbav:"recipe_name"`
	Status                   string           `dynamodbav:"status"`
	Priority                 string           `dynamodbav:"priority"`
	BatchSize                int              `dynamodbav:"batch_size"`
	ScheduledStart           string           `dynamodbav:"scheduled_start"`
	ScheduledCompletion      string           `dynamodbav:"scheduled_completion"`
	EstimatedDurationMinutes int              `dynamodbav:"estimated_duration_minutes"`
	MaterialCost             string           `dynamodbav:"material_cost"`
	LaborCost                string           `dynamodbav:"labor_cost"`
	OverheadCost             string           `dynamodbav:"overhead_cost"`
	TotalCost                string           `dynamodbav:"total_cost"`
	CostPerUnit              string           `dynamodbav:"cost_per_unit"`
	Currency                 string           `dynamodbav:"currency"`
	OrderIDs                 []string         `dynamodbav:"order_ids,stringset,omitempty"`
	Allocations              []allocationItem `dynamodbav:"ingredient_allocations"`
	CreatedAt                string           `dynamodbav:"created_at"`
	UpdatedAt                string           `dynamodbav:"updated_at"`
}

// ProductionBatchDynamoRepository persists planned batches in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - allocations and order ids are stored inline
//
// A batch and the stock reservations of its allocations are written in a
// single TransactWriteItems call, so either both land or neither does.

type ProductionBatchDynamoRepository struct {
	ddb              DynamoAPI
	tableName        string
	ingredientsTable string
}

var _ interfaces.IProductionBatchRepository = (*ProductionBatchDynamoRepository)(nil)

func NewProductionBatchDynamoRepository(ddb DynamoAPI) *ProductionBatchDynamoRepository {
	return &ProductionBatchDynamoRepository{
		ddb:              ddb,
		tableName:        getenvDefault("PRODUCTION_BATCHES_TABLE", defaultProductionBatchesTableName),
		ingredientsTable: ingredientsTableName(),
	}
}

func (r *ProductionBatchDynamoRepository) ListActive(ctx context.Context) ([]entities.ProductionBatch, error) {
	filter, names, values := statusFilter([]string{
		string(entities.BatchStatusPlanned),
		string(entities.BatchStatusIngredientsReady),
		string(entities.BatchStatusInProgress),
	})

	items, err := scanAll[productionBatchItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ConsistentRead:            aws.Bool(true),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "scan %s", r.tableName)
	}

	out := make([]entities.ProductionBatch, 0, len(items))
	for _, it := range items {
		out = append(out, fromProductionBatchItem(it))
	}
	return out, nil
}

func (r *ProductionBatchDynamoRepository) CreateWithAllocations(ctx context.Context, b entities.ProductionBatch) error {
	if len(b.IngredientAllocations)+1 > maxTransactItems {
		return errors.Wrapf(ErrTooManyAllocations, "batch %s has %d allocations", b.BatchNumber, len(b.IngredientAllocations))
	}

	av, err := attributevalue.MarshalMap(toProductionBatchItem(b))
	if err != nil {
		return err
	}

	writes := make([]types.TransactWriteItem, 0, len(b.IngredientAllocations)+1)
	writes = append(writes, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})
	for _, a := range b.IngredientAllocations {
		writes = append(writes, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.ingredientsTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: a.IngredientID},
				},
				ConditionExpression: aws.String("attribute_exists(#id)"),
				UpdateExpression:    aws.String("ADD #allocated :qty SET #updated_at = :updated_at"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#allocated":  "allocated_stock",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":qty":        &types.AttributeValueMemberN{Value: floatToString(a.PlannedQuantity)},
					":updated_at": &types.AttributeValueMemberS{Value: formatTime(b.CreatedAt)},
				},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems:      writes,
		ClientRequestToken: aws.String(b.ID),
	})
	if err != nil {
		return errors.Wrapf(err, "write batch %s", b.BatchNumber)
	}
	return nil
}

func toProductionBatchItem(b entities.ProductionBatch) productionBatchItem {
	it := productionBatchItem{
		ID:                       b.ID,
		BatchNumber:              b.BatchNumber,
		RecipeID:                 b.RecipeID,
		RecipeName:               b.RecipeName,
		Status:                   string(b.Status),
		Priority:                 string(b.Priority),
		BatchSize:                b.BatchSize,
		ScheduledStart:           formatTime(b.ScheduledStart),
		ScheduledCompletion:      formatTime(b.ScheduledCompletion),
		EstimatedDurationMinutes: b.EstimatedDurationMinutes,
		MaterialCost:             floatToString(b.MaterialCost),
		LaborCost:                floatToString(b.LaborCost),
		OverheadCost:             floatToString(b.OverheadCost),
		TotalCost:                floatToString(b.TotalCost),
		CostPerUnit:              floatToString(b.CostPerUnit),
		Currency:                 b.Currency,
		OrderIDs:                 b.OrderIDs,
		CreatedAt:                formatTime(b.CreatedAt),
		UpdatedAt:                formatTime(b.UpdatedAt),
	}
	for _, a := range b.IngredientAllocations {
		it.Allocations = append(it.Allocations, allocationItem{
			IngredientID:    a.IngredientID,
			IngredientName:  a.IngredientName,
			PlannedQuantity: a.PlannedQuantity,
			Unit:            a.Unit,
			CostPerUnit:     a.CostPerUnit,
			TotalCost:       a.TotalCost,
		})
	}
	return it
}

func fromProductionBatchItem(it productionBatchItem) entities.ProductionBatch {
	b := entities.ProductionBatch{
		ID:                       it.ID,
		BatchNumber:              it.BatchNumber,
		RecipeID:                 it.RecipeID,
		RecipeName:               it.RecipeName,
		Status:                   entities.BatchStatus(it.Status),
		Priority:                 entities.BatchPriority(it.Priority),
		BatchSize:                it.BatchSize,
		ScheduledStart:           parseTime(it.ScheduledStart),
		ScheduledCompletion:      parseTime(it.ScheduledCompletion),
		EstimatedDurationMinutes: it.EstimatedDurationMinutes,
		MaterialCost:             parseFloat(it.MaterialCost),
		LaborCost:                parseFloat(it.LaborCost),
		OverheadCost:             parseFloat(it.OverheadCost),
		TotalCost:                parseFloat(it.TotalCost),
		CostPerUnit:              parseFloat(it.CostPerUnit),
		Currency:                 it.Currency,
		OrderIDs:                 it.OrderIDs,
		CreatedAt:                parseTime(it.CreatedAt),
		UpdatedAt:                parseTime(it.UpdatedAt),
	}
	for _, a := range it.Allocations {
		b.IngredientAllocations = append(b.IngredientAllocations, entities.IngredientAllocation{
			BatchID:         it.ID,
			IngredientID:    a.IngredientID,
			IngredientName:  a.IngredientName,
			PlannedQuantity: a.PlannedQuantity,
			Unit:            a.Unit,
			CostPerUnit:     a.CostPerUnit,
			TotalCost:       a.TotalCost,
		})
	}
	return b
}
