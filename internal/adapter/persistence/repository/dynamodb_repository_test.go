package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"umkm_produksi/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeDynamo struct {
	scanPages    [][]map[string]types.AttributeValue
	scanInputs   []*dynamodb.ScanInput
	batchGets    []*dynamodb.BatchGetItemOutput
	batchInputs  []*dynamodb.BatchGetItemInput
	transactions []*dynamodb.TransactWriteItemsInput
	err          error
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	page := len(f.scanInputs)
	f.scanInputs = append(f.scanInputs, in)
	out := &dynamodb.ScanOutput{Items: f.scanPages[page]}
	if page+1 < len(f.scanPages) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "cursor"}}
	}
	return out, nil
}

func (f *fakeDynamo) BatchGetItem(_ context.Context, in *dynamodb.BatchGetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	call := len(f.batchInputs)
	f.batchInputs = append(f.batchInputs, in)
	return f.batchGets[call], nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transactions = append(f.transactions, in)
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func mustMarshal(t *testing.T, v any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestOrderDynamoRepository_ListByStatuses(t *testing.T) {
	delivery := time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC)
	o1 := entities.Order{ID: "o1", Status: entities.OrderStatusConfirmed, Priority: entities.OrderPriorityRush, DeliveryDate: &delivery,
		Items: []entities.OrderItem{{RecipeID: "r1", Quantity: 12}}}
	o2 := entities.Order{ID: "o2", Status: entities.OrderStatusPaid, Items: []entities.OrderItem{{RecipeID: "r2", Quantity: 3}}}

	fake := &fakeDynamo{scanPages: [][]map[string]types.AttributeValue{
		{mustMarshal(t, toOrderItem(o1))},
		{mustMarshal(t, toOrderItem(o2))},
	}}
	repo := NewOrderDynamoRepository(fake)

	orders, err := repo.ListByStatuses(context.Background(), []entities.OrderStatus{entities.OrderStatusConfirmed, entities.OrderStatusPaid})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 || len(fake.scanInputs) != 2 {
		t.Fatalf("expected two orders over two pages, got %d orders / %d scans", len(orders), len(fake.scanInputs))
	}
	if got := aws.ToString(fake.scanInputs[0].FilterExpression); got != "#status IN (:s0, :s1)" {
		t.Fatalf("unexpected filter: %s", got)
	}
	if fake.scanInputs[1].ExclusiveStartKey == nil {
		t.Fatalf("expected second scan to continue from the cursor")
	}
	if orders[0].DeliveryDate == nil || !orders[0].DeliveryDate.Equal(delivery) || orders[0].Items[0].Quantity != 12 {
		t.Fatalf("unexpected order: %+v", orders[0])
	}
	if orders[1].DeliveryDate != nil || orders[1].Priority != entities.OrderPriorityNormal {
		t.Fatalf("expected undated order with default priority, got %+v", orders[1])
	}
}

func TestOrderDynamoRepository_ScanError(t *testing.T) {
	repo := NewOrderDynamoRepository(&fakeDynamo{err: errors.New("throttled")})
	if _, err := repo.ListByStatuses(context.Background(), []entities.OrderStatus{entities.OrderStatusPaid}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestIngredientDynamoRepository_ListAvailability(t *testing.T) {
	fake := &fakeDynamo{scanPages: [][]map[string]types.AttributeValue{{
		mustMarshal(t, ingredientItem{ID: "flour", Name: "Tepung", CurrentStock: 10, AllocatedStock: 12, Unit: "kg", PricePerUnit: 12000, ReorderPoint: 5, LeadTimeDays: 2}),
	}}}
	t.Setenv("INGREDIENTS_TABLE", "bahan")
	repo := NewIngredientDynamoRepository(fake)

	got, err := repo.ListAvailability(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if aws.ToString(fake.scanInputs[0].TableName) != "bahan" {
		t.Fatalf("expected table from env, got %s", aws.ToString(fake.scanInputs[0].TableName))
	}
	if len(got) != 1 || got[0].AvailableStock != 0 || got[0].LeadTimeDays != 2 || got[0].ReorderPoint != 5 || got[0].PricePerUnit != 12000 {
		t.Fatalf("unexpected availability: %+v", got)
	}
}

func TestRecipeDynamoRepository_GetByIDs(t *testing.T) {
	r1 := mustMarshal(t, recipeItem{ID: "r1", Name: "Roti", Servings: 10, Ingredients: []recipeIngredientItem{{IngredientID: "flour", Quantity: 2}}})
	r2 := mustMarshal(t, recipeItem{ID: "r2", Name: "Bolu", Servings: 8})
	unprocessed := map[string]types.KeysAndAttributes{
		"recipes": {Keys: []map[string]types.AttributeValue{{"id": &types.AttributeValueMemberS{Value: "r2"}}}},
	}

	fake := &fakeDynamo{batchGets: []*dynamodb.BatchGetItemOutput{
		{Responses: map[string][]map[string]types.AttributeValue{"recipes": {r1}}, UnprocessedKeys: unprocessed},
		{Responses: map[string][]map[string]types.AttributeValue{"recipes": {r2}}},
	}}
	repo := NewRecipeDynamoRepository(fake)

	got, err := repo.GetByIDs(context.Background(), []string{"r1", "r2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Ingredients[0].IngredientID != "flour" || got[1].Servings != 8 {
		t.Fatalf("unexpected recipes: %+v", got)
	}
	if len(fake.batchInputs) != 2 || len(fake.batchInputs[0].RequestItems["recipes"].Keys) != 2 {
		t.Fatalf("expected a retry with the unprocessed keys, got %d calls", len(fake.batchInputs))
	}
}

func TestProductionBatchDynamoRepository_CreateWithAllocations(t *testing.T) {
	fake := &fakeDynamo{}
	repo := NewProductionBatchDynamoRepository(fake)
	b := entities.ProductionBatch{
		ID:          "b-1",
		BatchNumber: "BATCH-20261018-001",
		Status:      entities.BatchStatusPlanned,
		OrderIDs:    []string{"o1", "o2"},
		TotalCost:   171333.33,
		IngredientAllocations: []entities.IngredientAllocation{
			{IngredientID: "flour", PlannedQuantity: 10},
			{IngredientID: "sugar", PlannedQuantity: 2.5},
		},
		CreatedAt: time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC),
	}

	if err := repo.CreateWithAllocations(context.Background(), b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fake.transactions) != 1 {
		t.Fatalf("expected one transaction, got %d", len(fake.transactions))
	}
	tx := fake.transactions[0]
	if len(tx.TransactItems) != 3 || tx.TransactItems[0].Put == nil {
		t.Fatalf("expected put + 2 updates, got %+v", tx.TransactItems)
	}
	if aws.ToString(tx.ClientRequestToken) != "b-1" {
		t.Fatalf("expected idempotency token from batch id")
	}
	upd := tx.TransactItems[2].Update
	if aws.ToString(upd.TableName) != "ingredients" {
		t.Fatalf("unexpected table: %s", aws.ToString(upd.TableName))
	}
	qty, ok := upd.ExpressionAttributeValues[":qty"].(*types.AttributeValueMemberN)
	if !ok || qty.Value != "2.5" {
		t.Fatalf("unexpected qty: %+v", upd.ExpressionAttributeValues[":qty"])
	}

	var stored productionBatchItem
	if err := attributevalue.UnmarshalMap(tx.TransactItems[0].Put.Item, &stored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	back := fromProductionBatchItem(stored)
	if back.TotalCost != b.TotalCost || len(back.OrderIDs) != 2 || back.IngredientAllocations[1].BatchID != "b-1" {
		t.Fatalf("unexpected stored batch: %+v", back)
	}
}

func TestProductionBatchDynamoRepository_Errors(t *testing.T) {
	t.Run("transaction failure", func(t *testing.T) {
		repo := NewProductionBatchDynamoRepository(&fakeDynamo{err: &types.TransactionCanceledException{}})
		err := repo.CreateWithAllocations(context.Background(), entities.ProductionBatch{ID: "b-1"})
		var tce *types.TransactionCanceledException
		if !errors.As(err, &tce) {
			t.Fatalf("expected TransactionCanceledException, got %v", err)
		}
	})

	t.Run("too many allocations", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewProductionBatchDynamoRepository(fake)
		b := entities.ProductionBatch{ID: "b-1", IngredientAllocations: make([]entities.IngredientAllocation, maxTransactItems)}
		if err := repo.CreateWithAllocations(context.Background(), b); !errors.Is(err, ErrTooManyAllocations) {
			t.Fatalf("expected ErrTooManyAllocations, got %v", err)
		}
		if len(fake.transactions) != 0 {
			t.Fatalf("expected no write")
		}
	})
}

func TestProductionBatchDynamoRepository_ListActive(t *testing.T) {
	fake := &fakeDynamo{scanPages: [][]map[string]types.AttributeValue{{
		mustMarshal(t, toProductionBatchItem(entities.ProductionBatch{ID: "b-1", BatchNumber: "BATCH-20261018-004", Status: entities.BatchStatusInProgress})),
	}}}
	repo := NewProductionBatchDynamoRepository(fake)

	got, err := repo.ListActive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].BatchNumber != "BATCH-20261018-004" || !got[0].IsActive() {
		t.Fatalf("unexpected batches: %+v", got)
	}
	if len(fake.scanInputs[0].ExpressionAttributeValues) != 3 {
		t.Fatalf("expected three active statuses in the filter")
	}
}
