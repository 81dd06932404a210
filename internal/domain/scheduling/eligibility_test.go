package scheduling

import (
	"testing"
	"time"

	"umkm_produksi/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestFilterEligibleOrders(t *testing.T) {
	inHours := func(h float64) *time.Time {
		d := testNow.Add(time.Duration(h * float64(time.Hour)))
		return &d
	}
	orders := []entities.Order{
		{ID: "undated", Status: entities.OrderStatusConfirmed},
		{ID: "paid", Status: entities.OrderStatusPaid, DeliveryDate: inHours(24)},
		{ID: "draft", Status: entities.OrderStatusDraft},
		{ID: "cancelled", Status: entities.OrderStatusCancelled, DeliveryDate: inHours(48)},
		{ID: "soon", Status: entities.OrderStatusConfirmed, DeliveryDate: inHours(2)},
		{ID: "edge", Status: entities.OrderStatusConfirmed, DeliveryDate: inHours(4)},
	}

	eligible, tooLate := FilterEligibleOrders(orders, 4, testNow)

	var ids []string
	for _, o := range eligible {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []string{"undated", "paid", "edge"}, ids)
	if assert.Len(t, tooLate, 1) {
		assert.Equal(t, "soon", tooLate[0].ID)
	}
}
