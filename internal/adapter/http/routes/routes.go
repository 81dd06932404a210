package routes

import (
	"net/http"
	"strconv"

	_ "umkm_produksi/docs"
	"umkm_produksi/internal/adapter/http/handlers"
	"umkm_produksi/internal/adapter/persistence/cache"
	"umkm_produksi/internal/adapter/persistence/repository"
	"umkm_produksi/internal/domain/scheduling"
	"umkm_produksi/internal/infrastructure/database"
	"umkm_produksi/internal/infrastructure/metrics"
	"umkm_produksi/internal/infrastructure/timeline"
	"umkm_produksi/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

type serverSettings struct {
	Port int `envconfig:"PORT" default:"8080"`
}

// Run will start the server
func Run() {
	var settings serverSettings
	if err := envconfig.Process("", &settings); err != nil {
		log.WithError(err).Fatal("invalid server settings")
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	if err := router.Run(":" + strconv.Itoa(settings.Port)); err != nil {
		log.WithError(err).Fatal("Failed to startup the application")
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	cfg, err := scheduling.LoadConfigFromEnv()
	if err != nil {
		log.WithError(err).Fatal("invalid scheduler config")
	}
	estimator, err := timeline.NewLocalEstimatorFromEnv()
	if err != nil {
		log.WithError(err).Fatal("invalid timeline config")
	}

	schedulingUseCase, err := usecase.NewProductionSchedulingUseCase(usecase.SchedulingDependencies{
		Orders:      repository.NewOrderDynamoRepository(ddb),
		Ingredients: repository.NewIngredientDynamoRepository(ddb),
		Recipes:     repository.NewRecipeDynamoRepository(ddb),
		Batches:     repository.NewProductionBatchDynamoRepository(ddb),
		Runs:        cache.NewSchedulingRunCacheFromEnv(),
		Estimator:   estimator,
		Recorder:    metrics.NewRecorder(),
	}, cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to build scheduling use case")
	}

	schedulingHandler := handlers.NewSchedulingHandler(schedulingUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProductionRoutes(v1, schedulingHandler)
}

func setMiddlewares() {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithFields(log.Fields{
			"path":      c.Request.URL.Path,
			"recovered": recovered,
		}).Error("Recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
