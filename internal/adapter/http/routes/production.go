package routes

import (
	"umkm_produksi/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSchedules = "/production/schedules"
	PathConfig    = "/production/config"
	PathStats     = "/production/stats"
)

func addProductionRoutes(rg *gin.RouterGroup, schedulingHandler *handlers.SchedulingHandler) {
	schedules := rg.Group(PathSchedules)
	{
		schedules.POST("", schedulingHandler.CreateSchedule)
		schedules.GET("/:run_id", schedulingHandler.GetSchedule)
		schedules.GET("/:run_id/delivery-timeline", schedulingHandler.GetDeliveryTimeline)
	}

	rg.GET(PathStats, schedulingHandler.GetStats)

	config := rg.Group(PathConfig)
	{
		config.GET("", schedulingHandler.GetConfig)
		config.PUT("", schedulingHandler.UpdateConfig)
	}
}
