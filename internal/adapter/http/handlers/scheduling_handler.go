package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	request "umkm_produksi/internal/adapter/http/dto/request"
	response "umkm_produksi/internal/adapter/http/dto/response"
	"umkm_produksi/internal/domain/scheduling"
	"umkm_produksi/internal/usecase"
	"umkm_produksi/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSchedulePayload = pkg.NewDomainErrorSimple("INVALID_SCHEDULE_INPUT", "Invalid schedule payload", http.StatusBadRequest)
	errInvalidConfigPayload   = pkg.NewDomainErrorSimple("INVALID_CONFIG_INPUT", "Invalid config payload", http.StatusBadRequest)
)

// SchedulingHandler handles HTTP requests for production scheduling runs
// and the scheduler config.

type SchedulingHandler struct {
	usecase usecase.IProductionSchedulingUseCase
}

func NewSchedulingHandler(uc usecase.IProductionSchedulingUseCase) *SchedulingHandler {
	return &SchedulingHandler{usecase: uc}
}

// CreateSchedule runs the scheduler once over the current orders, or over
// order_ids when given.
//
// An empty body is a regular (non dry run) run with the current config.
//
// @Summary      Run production scheduling
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        body  body      request.ScheduleRequest  false  "Run options"
// @Success      201   {object}  response.SchedulingRunResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /production/schedules [post]
func (h *SchedulingHandler) CreateSchedule(c *gin.Context) {
	var payload request.ScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidSchedulePayload.HTTPStatus, errInvalidSchedulePayload.ToHTTPError())
		return
	}

	ctx := c.Request.Context()
	cmd := usecase.ScheduleCommand{DryRun: payload.DryRun, OrderIDs: payload.OrderIDs}
	if payload.Config != nil {
		cfg := payload.Config.ApplyTo(h.usecase.GetConfig(ctx))
		cmd.Override = &cfg
	}

	run, err := h.usecase.ScheduleProduction(ctx, cmd)
	if err != nil {
		appErr := mapSchedulingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSchedulingRun(run))
}

// GetSchedule returns a stored scheduling run.
//
// @Summary      Get scheduling run
// @Tags         production
// @Produce      json
// @Param        run_id  path      string  true  "Run ID"
// @Success      200     {object}  response.SchedulingRunResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Router       /production/schedules/{run_id} [get]
func (h *SchedulingHandler) GetSchedule(c *gin.Context) {
	run, err := h.usecase.GetRun(c.Request.Context(), c.Param("run_id"))
	if err != nil {
		appErr := mapSchedulingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSchedulingRun(run))
}

// GetDeliveryTimeline returns the per-order delivery estimates of a run.
//
// @Summary      Get delivery timeline
// @Tags         production
// @Produce      json
// @Param        run_id  path      string  true  "Run ID"
// @Success      200     {object}  response.DeliveryTimelineResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Router       /production/schedules/{run_id}/delivery-timeline [get]
func (h *SchedulingHandler) GetDeliveryTimeline(c *gin.Context) {
	runID := c.Param("run_id")
	timeline, err := h.usecase.GetDeliveryTimeline(c.Request.Context(), runID)
	if err != nil {
		appErr := mapSchedulingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeliveryTimeline(runID, timeline))
}

// GetStats returns pipeline counters and the outcome of the latest run.
//
// @Summary      Get production stats
// @Tags         production
// @Produce      json
// @Success      200  {object}  entities.ProductionStats
// @Failure      500  {object}  pkg.HTTPError
// @Router       /production/stats [get]
func (h *SchedulingHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.GetStats(c.Request.Context())
	if err != nil {
		appErr := mapSchedulingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary      Get scheduler config
// @Tags         production
// @Produce      json
// @Success      200  {object}  scheduling.Config
// @Router       /production/config [get]
func (h *SchedulingHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.GetConfig(c.Request.Context()))
}

// UpdateConfig merges the given fields into the current config. The result
// applies to subsequent runs.
//
// @Summary      Update scheduler config
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        body  body      request.ConfigOverride  true  "Fields to change"
// @Success      200   {object}  scheduling.Config
// @Failure      400   {object}  pkg.HTTPError
// @Router       /production/config [put]
func (h *SchedulingHandler) UpdateConfig(c *gin.Context) {
	var payload request.ConfigOverride
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPError())
		return
	}

	ctx := c.Request.Context()
	cfg, err := h.usecase.UpdateConfig(ctx, payload.ApplyTo(h.usecase.GetConfig(ctx)))
	if err != nil {
		appErr := mapSchedulingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, cfg)
}

func mapSchedulingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRunID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, scheduling.ErrInvalidConfig):
		return pkg.NewDomainError("INVALID_SCHEDULING_CONFIG", "Invalid scheduling config", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRunNotFound):
		return pkg.NewDomainErrorSimple("SCHEDULING_RUN_NOT_FOUND", "Scheduling run not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSchedulingInProgress):
		return pkg.NewDomainErrorSimple("SCHEDULING_IN_PROGRESS", "Another scheduling run is in progress", http.StatusConflict)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("REQUEST_CANCELLED", "Request cancelled before scheduling started", err, http.StatusServiceUnavailable)
	case errors.Is(err, scheduling.ErrInvalidRecipeServings):
		return pkg.NewDomainError("INVALID_RECIPE", "A recipe has no servings defined", err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
