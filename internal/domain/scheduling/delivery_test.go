package scheduling

import (
	"testing"
	"time"

	"umkm_produksi/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateDeliveryTimeline(t *testing.T) {
	at := func(h int) time.Time { return testNow.Add(time.Duration(h) * time.Hour) }
	batches := []entities.ProductionBatch{
		{ID: "b1", ScheduledCompletion: at(5), OrderIDs: []string{"split", "late"}},
		{ID: "b2", ScheduledCompletion: at(9), OrderIDs: []string{"split", "undated"}},
	}
	split := at(24)
	late := at(3)
	orders := []entities.Order{
		{ID: "split", DeliveryDate: &split},
		{ID: "late", DeliveryDate: &late},
		{ID: "undated"},
		{ID: "unscheduled", DeliveryDate: &split},
	}

	got := EstimateDeliveryTimeline(batches, orders, testNow)
	require.Len(t, got, 4)

	assert.Equal(t, "b2", got[0].ProductionBatchID, "ready when the last batch completes")
	assert.Equal(t, at(9), got[0].EstimatedReadyDate)
	assert.Equal(t, 0.9, got[0].OnTimeProbability)

	assert.Equal(t, 0.3, got[1].OnTimeProbability)

	assert.Equal(t, farFutureDelivery, got[2].EstimatedDeliveryDate)
	assert.Equal(t, 0.9, got[2].OnTimeProbability)

	assert.Empty(t, got[3].ProductionBatchID)
	assert.Equal(t, testNow, got[3].EstimatedReadyDate)
	assert.Zero(t, got[3].OnTimeProbability)
}
