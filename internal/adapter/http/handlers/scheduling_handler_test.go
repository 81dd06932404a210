package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"umkm_produksi/internal/adapter/http/handlers/mocks"
	"umkm_produksi/internal/domain/entities"
	"umkm_produksi/internal/domain/scheduling"
	"umkm_produksi/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newSchedulingRouter(h *SchedulingHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/production/schedules", h.CreateSchedule)
	r.GET("/v1/production/schedules/:run_id", h.GetSchedule)
	r.GET("/v1/production/schedules/:run_id/delivery-timeline", h.GetDeliveryTimeline)
	r.GET("/v1/production/stats", h.GetStats)
	r.GET("/v1/production/config", h.GetConfig)
	r.PUT("/v1/production/config", h.UpdateConfig)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSchedulingHandler_CreateSchedule(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionSchedulingUseCase(ctrl)
		r := newSchedulingRouter(NewSchedulingHandler(uc))

		w := serve(r, http.MethodPost, "/v1/production/schedules", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown strategy rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionSchedulingUseCase(ctrl)
		r := newSchedulingRouter(NewSchedulingHandler(uc))

		w := serve(r, http.MethodPost, "/v1/production/schedules", `{"config":{"batch_size_strategy":"largest"}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty body runs with current config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionSchedulingUseCase(ctrl)
		r := newSchedulingRouter(NewSchedulingHandler(uc))

		run := entities.SchedulingRun{ID: "run-1", Result: entities.SchedulingResult{Success: true}}
		uc.EXPECT().ScheduleProduction(gomock.Any(), usecase.ScheduleCommand{}).Return(run, nil)

		w := serve(r, http.MethodPost, "/v1/production/schedules", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if body["run_id"] != "run-1" || body["success"] != true {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("dry run with override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionSchedulingUseCase(ctrl)
		r := newSchedulingRouter(NewSchedulingHandler(uc))

		uc.EXPECT().GetConfig(gomock.Any()).Return(scheduling.DefaultConfig())
		uc.EXPECT().ScheduleProduction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, cmd usecase.ScheduleCommand) (entities.SchedulingRun, error) {
				override := cmd.Override
				if !cmd.DryRun || override == nil || override.BatchSizeStrategy != scheduling.StrategyFixed || override.MaxBatchesPerDay != 8 {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.SchedulingRun{ID: "run-2", DryRun: true}, nil
			})

		w := serve(r, http.MethodPost, "/v1/production/schedules", `{"dry_run":true,"config":{"batch_size_strategy":"fixed"}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("selected orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionSchedulingUseCase(ctrl)
		r := newSchedulingRouter(NewSchedulingHandler(uc))

		uc.EXPECT().ScheduleProduction(gomock.Any(), usecase.ScheduleCommand{OrderIDs: []string{"o1", "o3"}}).
			Return(entities.SchedulingRun{ID: "run-3"}, nil)

		w := serve(r, http.MethodPost, "/v1/production/schedules", `{"order_ids":["o1","o3"]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("blank order id rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionSchedulingUseCase(ctrl)
		r := newSchedulingRouter(NewSchedulingHandler(uc))

		w := serve(r, http.MethodPost, "/v1/production/schedules", `{"order_ids":["o1",""]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("mapped errors", func(t *testing.T) {
		cases := []struct {
			err  error
			want int
		}{
			{usecase.ErrSchedulingInProgress, http.StatusConflict},
			{scheduling.ErrInvalidConfig, http.StatusBadRequest},
			{scheduling.ErrInvalidRecipeServings, http.StatusUnprocessableEntity},
			{context.Canceled, http.StatusServiceUnavailable},
			{errors.New("dynamo down"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIProductionSchedulingUseCase(ctrl)
			r := newSchedulingRouter(NewSchedulingHandler(uc))

			uc.EXPECT().ScheduleProduction(gomock.Any(), gomock.Any()).Return(entities.SchedulingRun{}, tc.err)

			w := serve(r, http.MethodPost, "/v1/production/schedules", `{}`)
			if w.Code != tc.want {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, w.Code)
			}
			ctrl.Finish()
		}
	})
}

func TestSchedulingHandler_GetSchedule(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionSchedulingUseCase(ctrl)
		r := newSchedulingRouter(NewSchedulingHandler(uc))

		uc.EXPECT().GetRun(gomock.Any(), "missing").Return(entities.SchedulingRun{}, usecase.ErrRunNotFound)

		w := serve(r, http.MethodGet, "/v1/production/schedules/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionSchedulingUseCase(ctrl)
		r := newSchedulingRouter(NewSchedulingHandler(uc))

		uc.EXPECT().GetRun(gomock.Any(), "run-1").Return(entities.SchedulingRun{ID: "run-1"}, nil)

		w := serve(r, http.MethodGet, "/v1/production/schedules/run-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestSchedulingHandler_GetDeliveryTimeline(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid run id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionSchedulingUseCase(ctrl)
		r := newSchedulingRouter(NewSchedulingHandler(uc))

		uc.EXPECT().GetDeliveryTimeline(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidRunID)

		w := serve(r, http.MethodGet, "/v1/production/schedules/%20/delivery-timeline", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionSchedulingUseCase(ctrl)
		r := newSchedulingRouter(NewSchedulingHandler(uc))

		ready := time.Date(2026, 10, 19, 6, 0, 0, 0, time.UTC)
		uc.EXPECT().GetDeliveryTimeline(gomock.Any(), "run-1").Return([]entities.DeliveryTimeline{
			{OrderID: "o1", EstimatedReadyDate: ready, EstimatedDeliveryDate: ready.Add(2 * time.Hour), ProductionBatchID: "b-1", OnTimeProbability: 0.95},
		}, nil)

		w := serve(r, http.MethodGet, "/v1/production/schedules/run-1/delivery-timeline", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			RunID    string                      `json:"run_id"`
			Timeline []entities.DeliveryTimeline `json:"timeline"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if body.RunID != "run-1" || len(body.Timeline) != 1 || body.Timeline[0].ProductionBatchID != "b-1" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestSchedulingHandler_Config(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionSchedulingUseCase(ctrl)
		r := newSchedulingRouter(NewSchedulingHandler(uc))

		uc.EXPECT().GetConfig(gomock.Any()).Return(scheduling.DefaultConfig())

		w := serve(r, http.MethodGet, "/v1/production/config", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var cfg scheduling.Config
		if err := json.Unmarshal(w.Body.Bytes(), &cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.BatchSizeStrategy != scheduling.StrategyOptimal || cfg.MaxBatchesPerDay != 8 {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	t.Run("update merges fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionSchedulingUseCase(ctrl)
		r := newSchedulingRouter(NewSchedulingHandler(uc))

		uc.EXPECT().GetConfig(gomock.Any()).Return(scheduling.DefaultConfig())
		uc.EXPECT().UpdateConfig(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, cfg scheduling.Config) (scheduling.Config, error) {
				if cfg.MaxBatchesPerDay != 12 || cfg.MinBatchSize != 10 {
					t.Fatalf("unexpected config: %+v", cfg)
				}
				return cfg, nil
			})

		w := serve(r, http.MethodPut, "/v1/production/config", `{"max_batches_per_day":12}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionSchedulingUseCase(ctrl)
		r := newSchedulingRouter(NewSchedulingHandler(uc))

		uc.EXPECT().GetConfig(gomock.Any()).Return(scheduling.DefaultConfig())
		uc.EXPECT().UpdateConfig(gomock.Any(), gomock.Any()).Return(scheduling.Config{}, scheduling.ErrInvalidConfig)

		w := serve(r, http.MethodPut, "/v1/production/config", `{"min_batch_size":500}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestSchedulingHandler_GetStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionSchedulingUseCase(ctrl)
		r := newSchedulingRouter(NewSchedulingHandler(uc))

		uc.EXPECT().GetStats(gomock.Any()).Return(entities.ProductionStats{
			TotalPendingOrders:  3,
			IngredientShortages: 1,
			LowStockIngredients: []entities.LowStockIngredient{{IngredientID: "flour", LeadTimeDays: 3}},
			LastRunID:           "run-1",
		}, nil)

		w := serve(r, http.MethodGet, "/v1/production/stats", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var stats entities.ProductionStats
		if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.TotalPendingOrders != 3 || stats.LowStockIngredients[0].LeadTimeDays != 3 || stats.LastRunID != "run-1" {
			t.Fatalf("unexpected stats: %+v", stats)
		}
	})

	t.Run("load failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionSchedulingUseCase(ctrl)
		r := newSchedulingRouter(NewSchedulingHandler(uc))

		uc.EXPECT().GetStats(gomock.Any()).Return(entities.ProductionStats{}, errors.New("throttled"))

		w := serve(r, http.MethodGet, "/v1/production/stats", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
