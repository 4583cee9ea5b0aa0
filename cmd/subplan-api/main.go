package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/gymplan/subplan-api/api/swagger"
	"github.com/gymplan/subplan-api/internal/handler"
	"github.com/gymplan/subplan-api/internal/middleware"
	"github.com/gymplan/subplan-api/internal/service"
	"github.com/gymplan/subplan-api/internal/store"
	"github.com/gymplan/subplan-api/pkg/config"
	"github.com/gymplan/subplan-api/pkg/logger"
	corsmiddleware "github.com/gymplan/subplan-api/pkg/middleware/cors"
	reqidmiddleware "github.com/gymplan/subplan-api/pkg/middleware/requestid"
	"github.com/gymplan/subplan-api/pkg/storage"
)

// @title Subplan API
// @version 0.1.0
// @description Weekly timetable and substitution planning service
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	document, err := storage.NewFileDocument(cfg.Store.File)
	if err != nil {
		logr.Sugar().Fatalw("failed to open document store", "error", err)
	}

	st := store.New(document, logr)
	if err := st.Load(); err != nil {
		logr.Sugar().Fatalw("failed to load document", "error", err)
	}

	metricsSvc := service.NewMetricsService()
	st.SetObserver(metricsSvc)

	exportsDir, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare exports directory", "error", err)
	}

	timetableSvc := service.NewTimetableService(st, nil, logr)
	absenceSvc := service.NewAbsenceService(st, logr)
	substitutionSvc := service.NewSubstitutionService(st, timetableSvc, nil, logr)
	directorySvc := service.NewDirectoryService(st, nil, logr)
	exportSvc := service.NewExportService(substitutionSvc, exportsDir, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterRoutes(r, cfg.APIPrefix, handler.Handlers{
		Directory:    handler.NewDirectoryHandler(directorySvc),
		Timetable:    handler.NewTimetableHandler(timetableSvc),
		Absence:      handler.NewAbsenceHandler(absenceSvc),
		Substitution: handler.NewSubstitutionHandler(substitutionSvc),
		Export:       handler.NewExportHandler(exportSvc),
		Metrics:      handler.NewMetricsHandler(metricsSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "store", document.Path())
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
