package repository

import (
	"context"

	"umkm_produksi/internal/domain/entities"
	"umkm_produksi/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/pkg/errors"
)

const defaultIngredientsTableName = "ingredients"

type ingredientItem struct {
	ID             string  `dynamodbav:"id"`
	Name           string  `dynamodbav:"name"`
	CurrentStock   float64 `dynamodbav:"current_stock"`
	AllocatedStock float64 `dynamodbav:"allocated_stock"`
	Unit           string  `dynamodbav:"unit"`
	PricePerUnit   float64 `dynamodbav:"price_per_unit"`
	ReorderPoint   float64 `dynamodbav:"reorder_point"`
	LeadTimeDays   int     `dynamodbav:"lead_time_days"`
}

// IngredientDynamoRepository reads stock levels from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - allocated_stock is a number so batch writes can ADD to it

type IngredientDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IIngredientRepository = (*IngredientDynamoRepository)(nil)

func NewIngredientDynamoRepository(ddb DynamoAPI) *IngredientDynamoRepository {
	return &IngredientDynamoRepository{
		ddb:       ddb,
		tableName: ingredientsTableName(),
	}
}

func ingredientsTableName() string {
	return getenvDefault("INGREDIENTS_TABLE", defaultIngredientsTableName)
}

func (r *IngredientDynamoRepository) ListAvailability(ctx context.Context) ([]entities.IngredientAvailability, error) {
	items, err := scanAll[ingredientItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "scan %s", r.tableName)
	}

	out := make([]entities.IngredientAvailability, 0, len(items))
	for _, it := range items {
		out = append(out, fromIngredientItem(it))
	}
	return out, nil
}

func fromIngredientItem(it ingredientItem) entities.IngredientAvailability {
	a := entities.NewIngredientAvailability(it.ID, it.Name, it.CurrentStock, it.AllocatedStock, it.Unit)
	a.PricePerUnit = it.PricePerUnit
	a.ReorderPoint = it.ReorderPoint
	a.LeadTimeDays = it.LeadTimeDays
	return a
}
