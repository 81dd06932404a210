package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"umkm_produksi/internal/domain/entities"
)

func TestFromSchedulingRun(t *testing.T) {
	done := time.Date(2026, 10, 19, 5, 30, 0, 0, time.UTC)
	run := entities.SchedulingRun{
		ID:     "run-1",
		DryRun: true,
		Result: entities.SchedulingResult{
			Success: true,
			CreatedBatches: []entities.ProductionBatch{{
				ID: "b-1", BatchNumber: "BATCH-20261018-001", Status: entities.BatchStatusPlanned,
				Priority: entities.BatchPriorityHigh, BatchSize: 50, TotalCost: 1000, OrderIDs: []string{"o1"},
			}},
			SkippedOrders: []entities.SkippedOrder{{
				OrderID: "o2", RecipeID: "r1", Order: entities.Order{ID: "o2", CustomerName: "Bu Sari"},
				Reason: entities.SkipReasonUnfitForBatches, Message: "Could not fit in available batches",
			}},
			TotalCost:           1000,
			EstimatedCompletion: done,
		},
	}

	got := FromSchedulingRun(run)
	if got.RunID != "run-1" || !got.DryRun || !got.Success {
		t.Fatalf("unexpected header: %+v", got)
	}
	if got.Summary.CreatedBatches != 1 || got.Summary.SkippedOrders != 1 || !got.Summary.EstimatedCompletion.Equal(done) {
		t.Fatalf("unexpected summary: %+v", got.Summary)
	}
	if got.CreatedBatches[0].Status != "planned" || got.CreatedBatches[0].Priority != "high" {
		t.Fatalf("unexpected batch: %+v", got.CreatedBatches[0])
	}
	if got.SkippedOrders[0].CustomerName != "Bu Sari" || got.SkippedOrders[0].Reason != "unfit_for_batches" {
		t.Fatalf("unexpected skipped order: %+v", got.SkippedOrders[0])
	}

	body, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, field := range []string{`"excluded_orders":[]`, `"ingredient_issues":[]`, `"persistence_errors":[]`, `"ingredient_allocations":[]`} {
		if !strings.Contains(string(body), field) {
			t.Fatalf("expected %s in %s", field, body)
		}
	}
}

func TestFromDeliveryTimeline(t *testing.T) {
	got := FromDeliveryTimeline("run-1", nil)
	if got.RunID != "run-1" || got.Timeline == nil || len(got.Timeline) != 0 {
		t.Fatalf("unexpected response: %+v", got)
	}
}
