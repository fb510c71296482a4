package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"linkpulse/internal/config"
	"linkpulse/internal/geo"
	"linkpulse/internal/handler"
	"linkpulse/internal/metrics"
	"linkpulse/internal/mq"
	"linkpulse/internal/repository"
	"linkpulse/internal/scheduler"
	"linkpulse/internal/service"
	"linkpulse/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultConfigPath = "configs/config.yaml"

// clickDispatcher is a dispatcher that can be drained on shutdown
type clickDispatcher interface {
	service.ClickDispatcher
	Close(ctx context.Context) error
}

// @title LinkPulse API
// @version 1.0
// @description Short link redirects with click analytics
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.example.com/support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Server.Mode, cfg.Log.Level)

	// Initialize repositories
	redisRepo := repository.NewRedisRepository(&cfg.Database.Redis)
	defer redisRepo.Close()

	mysqlRepo := repository.NewMySQLRepository(&cfg.Database.MySQL, &cfg.Storage)
	defer mysqlRepo.Close()

	// Click recording
	resolver, err := geo.NewResolver(&cfg.Geo, geo.WithCache(geo.NewRedisCache(redisRepo.GetClient(), cfg.Geo.CacheTTL)))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build geolocation resolver")
	}
	recorder := service.NewClickRecorder(resolver, mysqlRepo)

	var (
		dispatcher clickDispatcher
		mqProducer *mq.Producer
		mqConsumer *mq.Consumer
	)
	if cfg.RocketMQ.NameServer != "" {
		mqProducer, err = mq.NewProducer(&cfg.RocketMQ)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ producer, recording clicks in-process")
		}
	}
	if mqProducer != nil {
		dispatcher = mq.NewDispatcher(mqProducer, cfg.Analytics.DispatchQueueSize)

		mqConsumer, err = mq.NewConsumer(&cfg.RocketMQ, recorder.Record)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ consumer")
		} else if err := mqConsumer.Subscribe(); err != nil {
			log.Error().Err(err).Msg("Failed to subscribe to RocketMQ")
		}
	} else {
		dispatcher = service.NewAsyncDispatcher(recorder, cfg.Analytics.DispatchWorkers, cfg.Analytics.DispatchQueueSize)
	}

	// Initialize services
	linkSvc := service.NewLinkService(mysqlRepo, redisRepo, cfg.Database.Redis.LinkCacheTTL)
	aggregationJob := service.NewAggregationJob(mysqlRepo, &cfg.Analytics)
	maintenanceSvc := service.NewMaintenanceService(mysqlRepo, &cfg.Analytics)
	analyticsSvc := service.NewAnalyticsService(mysqlRepo, mysqlRepo)

	// Scheduler
	jobScheduler, err := scheduler.New(cfg.Scheduler.Timezone, scheduler.DefaultJobs(&cfg.Scheduler, aggregationJob, maintenanceSvc))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build scheduler")
	}
	if cfg.Scheduler.Enabled {
		jobScheduler.Start()
	}

	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// Middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(corsMiddleware())

	// Outcome pages and probes
	statusHandler := handler.NewStatusHandler(maintenanceSvc)
	router.GET(handler.NotFoundPath, statusHandler.NotFound)
	router.GET(handler.ExpiredPath, statusHandler.Expired)
	router.GET(handler.DisabledPath, statusHandler.Disabled)
	router.GET("/health", statusHandler.Health)
	router.GET("/metrics", metrics.Handler())

	// Swagger documentation
	setupSwagger(router)

	auth := middleware.BearerAuth(cfg.CronSecret)

	// Cron trigger for external schedulers
	cronHandler := handler.NewCronHandler(aggregationJob)
	cron := router.Group("/api/cron", auth)
	{
		cron.POST("/daily-analytics", cronHandler.DailyAnalytics)
	}

	// Scheduler control
	schedulerHandler := handler.NewSchedulerHandler(jobScheduler)
	sched := router.Group("/api/scheduler", auth)
	{
		sched.GET("", schedulerHandler.Status)
		sched.POST("", schedulerHandler.Control)
	}

	// API v1 routes
	analyticsHandler := handler.NewAnalyticsHandler(analyticsSvc)
	v1 := router.Group("/api/v1", auth)
	{
		v1.GET("/analytics/:shortCode", analyticsHandler.GetAnalytics)
	}

	// Redirect handler (short codes)
	redirectHandler := handler.NewRedirectHandler(linkSvc, dispatcher, cfg.Server.BaseURL)
	router.GET("/:shortCode", redirectHandler.Redirect)

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Msgf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	jobScheduler.Stop()

	// Drain clicks already accepted before closing their transport
	if err := dispatcher.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Click dispatcher did not drain in time")
	}
	if mqProducer != nil {
		mqProducer.Close()
	}
	if mqConsumer != nil {
		mqConsumer.Close()
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures the logger. Release mode writes JSON, anything
// else writes to a console writer for pretty output.
func setupLogger(mode, level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if mode != "release" && lvl > zerolog.DebugLevel {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if mode == "release" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// setupSwagger sets up Swagger UI
func setupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
