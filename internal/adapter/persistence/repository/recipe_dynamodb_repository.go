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
	log "github.com/sirupsen/logrus"
)

const (
	defaultRecipesTableName = "recipes"
	batchGetLimit           = 100
	batchGetMaxAttempts     = 5
)

type recipeIngredientItem struct {
	IngredientID   string  `dynamodbav:"ingredient_id"`
	IngredientName string  `dynamodbav:"ingredient_name"`
	Quantity       float64 `dynamodbav:"quantity"`
	Unit           string  `dynamodbav:"unit"`
	PricePerUnit   float64 `dynamodbav:"price_per_unit"`
}

type recipeItem struct {
	ID          string                 `dynamodbav:"id"`
	Name        string                 `dynamodbav:"name"`
	Servings    int                    `dynamodbav:"servings"`
	Ingredients []recipeIngredientItem `dynamodbav:"ingredients"`
}

// RecipeDynamoRepository reads recipes with their ingredient lines.
//
// Table requirements:
//   - PK: id (string)
//   - ingredient lines are stored inline with the unit price at recipe level

type RecipeDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IRecipeRepository = (*RecipeDynamoRepository)(nil)

func NewRecipeDynamoRepository(ddb DynamoAPI) *RecipeDynamoRepository {
	return &RecipeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECIPES_TABLE", defaultRecipesTableName),
	}
}

func (r *RecipeDynamoRepository) GetByIDs(ctx context.Context, ids []string) ([]entities.Recipe, error) {
	var out []entities.Recipe
	for start := 0; start < len(ids); start += batchGetLimit {
		end := min(start+batchGetLimit, len(ids))
		recipes, err := r.getChunk(ctx, ids[start:end])
		if err != nil {
			return nil, err
		}
		out = append(out, recipes...)
	}
	return out, nil
}

func (r *RecipeDynamoRepository) getChunk(ctx context.Context, ids []string) ([]entities.Recipe, error) {
	keys := make([]map[string]types.AttributeValue, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		})
	}

	var out []entities.Recipe
	request := map[string]types.KeysAndAttributes{
		r.tableName: {Keys: keys, ConsistentRead: aws.Bool(true)},
	}
	for attempt := 1; len(request) > 0; attempt++ {
		if attempt > batchGetMaxAttempts {
			return nil, errors.Errorf("batch get %s: unprocessed keys after %d attempts", r.tableName, batchGetMaxAttempts)
		}
		res, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
		if err != nil {
			return nil, errors.Wrapf(err, "batch get %s", r.tableName)
		}

		var items []recipeItem
		if err := attributevalue.UnmarshalListOfMaps(res.Responses[r.tableName], &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromRecipeItem(it))
		}

		request = res.UnprocessedKeys
		if len(request) > 0 {
			log.WithFields(log.Fields{"table": r.tableName, "attempt": attempt}).Debug("[scheduling][repository] retrying unprocessed recipe keys")
		}
	}
	return out, nil
}

func fromRecipeItem(it recipeItem) entities.Recipe {
	r := entities.Recipe{ID: it.ID, Name: it.Name, Servings: it.Servings}
	for _, ri := range it.Ingredients {
		r.Ingredients = append(r.Ingredients, entities.RecipeIngredient{
			IngredientID:   ri.IngredientID,
			IngredientName: ri.IngredientName,
			Quantity:       ri.Quantity,
			Unit:           ri.Unit,
			PricePerUnit:   ri.PricePerUnit,
		})
	}
	return r
}
