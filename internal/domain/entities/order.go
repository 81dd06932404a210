package entities

import "time"

// OrderStatus represents the lifecycle of a customer order.
//
// Status transitions are owned by the order workflows. The production
// scheduler only reads them.

type OrderStatus string

const (
	OrderStatusDraft          OrderStatus = "draft"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPaymentPending OrderStatus = "payment_pending"
	OrderStatusPaid           OrderStatus = "paid"
	OrderStatusInProduction   OrderStatus = "in_production"
	OrderStatusReady          OrderStatus = "ready"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
	OrderStatusRefunded       OrderStatus = "refunded"
)

type OrderPriority string

const (
	OrderPriorityLow    OrderPriority = "low"
	OrderPriorityNormal OrderPriority = "normal"
	OrderPriorityHigh   OrderPriority = "high"
	OrderPriorityUrgent OrderPriority = "urgent"
	OrderPriorityRush   OrderPriority = "rush"
)

// Weight orders priorities from most (1) to least (5) urgent.
// Unknown priorities are treated as normal.
func (p OrderPriority) Weight() int {
	switch p {
	case OrderPriorityRush:
		return 1
	case OrderPriorityUrgent:
		return 2
	case OrderPriorityHigh:
		return 3
	case OrderPriorityLow:
		return 5
	default:
		return 4
	}
}

type OrderItem struct {
	RecipeID   string `json:"recipe_id"`
	RecipeName string `json:"recipe_name,omitempty"`
	Quantity   int    `json:"quantity"`
}

// Order is a customer order as seen by the production scheduler.
//
// Storage model (DynamoDB):
//   - PK: id
//   - items are stored as a nested list

type Order struct {
	ID           string        `json:"id"`
	CustomerID   string        `json:"customer_id"`
	CustomerName string        `json:"customer_name,omitempty"`
	Items        []OrderItem   `json:"items"`
	Status       OrderStatus   `json:"status"`
	Priority     OrderPriority `json:"priority"`
	DeliveryDate *time.Time    `json:"delivery_date,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

func (o Order) TotalQuantity() int {
	total := 0
	for _, it := range o.Items {
		total += it.Quantity
	}
	return total
}
