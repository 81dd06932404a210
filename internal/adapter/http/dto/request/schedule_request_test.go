package request

import (
	"encoding/json"
	"testing"

	"umkm_produksi/internal/domain/entities"
	"umkm_produksi/internal/domain/scheduling"
)

func TestConfigOverride_ApplyTo(t *testing.T) {
	var req ScheduleRequest
	body := `{"dry_run":true,"config":{"batch_size_strategy":"fixed","max_batches_per_day":3,"auto_schedule_enabled":false,"priority_mapping":{"low":"normal"}}}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !req.DryRun || req.Config == nil {
		t.Fatalf("unexpected request: %+v", req)
	}

	base := scheduling.DefaultConfig()
	cfg := req.Config.ApplyTo(base)

	if cfg.BatchSizeStrategy != scheduling.StrategyFixed || cfg.MaxBatchesPerDay != 3 || cfg.AutoScheduleEnabled {
		t.Fatalf("override not applied: %+v", cfg)
	}
	if cfg.DefaultBatchSize != base.DefaultBatchSize || cfg.Currency != "IDR" {
		t.Fatalf("unset fields must keep the base value: %+v", cfg)
	}
	if cfg.PriorityMapping[entities.OrderPriorityLow] != entities.BatchPriorityNormal {
		t.Fatalf("expected merged priority mapping, got %v", cfg.PriorityMapping)
	}
	if cfg.PriorityMapping[entities.OrderPriorityRush] != entities.BatchPriorityRush {
		t.Fatalf("expected untouched entries to survive, got %v", cfg.PriorityMapping)
	}
	if base.PriorityMapping[entities.OrderPriorityLow] != entities.BatchPriorityLow {
		t.Fatalf("base config was mutated")
	}
}

func TestConfigOverride_EmptyKeepsBase(t *testing.T) {
	base := scheduling.DefaultConfig()
	cfg := ConfigOverride{}.ApplyTo(base)
	if cfg.BatchSizeStrategy != base.BatchSizeStrategy || cfg.MaxBatchSize != base.MaxBatchSize || cfg.OverheadRate != base.OverheadRate {
		t.Fatalf("expected base config, got %+v", cfg)
	}
}
