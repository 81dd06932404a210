package repository

import (
	"context"
	"time"

	"umkm_produksi/internal/domain/entities"
	"umkm_produksi/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/pkg/errors"
)

const defaultOrdersTableName = "orders"

type orderLineItem struct {
	RecipeID   string `dynamodbav:"recipe_id"`
	RecipeName string `dynamodbav:"recipe_name,omitempty"`
	Quantity   int    `dynamodbav:"quantity"`
}

type orderItem struct {
	ID           string          `dynamodbav:"id"`
	CustomerID   string          `dynamodbav:"customer_id"`
	CustomerName string          `dynamodbav:"customer_name,omitempty"`
	Items        []orderLineItem `dynamodbav:"items"`
	Status       string          `dynamodbav:"status"`
	Priority     string          `dynamodbav:"priority"`
	DeliveryDate string          `dynamodbav:"delivery_date,omitempty"`
	CreatedAt    string          `dynamodbav:"created_at"`
}

// OrderDynamoRepository reads customer orders from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - line items are stored inline as a list of maps

type OrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) ListByStatuses(ctx context.Context, statuses []entities.OrderStatus) ([]entities.Order, error) {
	if len(statuses) == 0 {
		return nil, nil
	}
	raw := make([]string, 0, len(statuses))
	for _, s := range statuses {
		raw = append(raw, string(s))
	}
	filter, names, values := statusFilter(raw)

	items, err := scanAll[orderItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "scan %s", r.tableName)
	}

	out := make([]entities.Order, 0, len(items))
	for _, it := range items {
		out = append(out, fromOrderItem(it))
	}
	return out, nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
		Status:       string(o.Status),
		Priority:     string(o.Priority),
		CreatedAt:    formatTime(o.CreatedAt),
	}
	if o.DeliveryDate != nil {
		it.DeliveryDate = formatTime(*o.DeliveryDate)
	}
	for _, li := range o.Items {
		it.Items = append(it.Items, orderLineItem{RecipeID: li.RecipeID, RecipeName: li.RecipeName, Quantity: li.Quantity})
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	o := entities.Order{
		ID:           it.ID,
		CustomerID:   it.CustomerID,
		CustomerName: it.CustomerName,
		Status:       entities.OrderStatus(it.Status),
		Priority:     entities.OrderPriority(it.Priority),
		CreatedAt:    parseTime(it.CreatedAt),
	}
	if o.Priority == "" {
		o.Priority = entities.OrderPriorityNormal
	}
	if it.DeliveryDate != "" {
		if d, err := time.Parse(time.RFC3339Nano, it.DeliveryDate); err == nil {
			o.DeliveryDate = &d
		}
	}
	for _, li := range it.Items {
		o.Items = append(o.Items, entities.OrderItem{RecipeID: li.RecipeID, RecipeName: li.RecipeName, Quantity: li.Quantity})
	}
	return o
}
