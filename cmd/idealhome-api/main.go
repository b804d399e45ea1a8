package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/idealhome/idealhome-api/internal/handler"
	"github.com/idealhome/idealhome-api/internal/repository"
	"github.com/idealhome/idealhome-api/internal/service"
	"github.com/idealhome/idealhome-api/pkg/config"
	"github.com/idealhome/idealhome-api/pkg/export"
	"github.com/idealhome/idealhome-api/pkg/kvstore"
	"github.com/idealhome/idealhome-api/pkg/logger"
	corsmiddleware "github.com/idealhome/idealhome-api/pkg/middleware/cors"
	reqidmiddleware "github.com/idealhome/idealhome-api/pkg/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg.Env, cfg.Log)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	provider, err := newProvider(cfg)
	if err != nil {
		logr.Sugar().Fatalw("failed to init storage backend", "backend", cfg.Store.Backend, "error", err)
	}

	metrics := service.NewMetricsService()

	store := repository.NewStore(provider, cfg.Store.Key, logr,
		repository.WithStrictLoad(cfg.Store.StrictLoad),
		repository.WithObserver(metrics),
	)
	ctx := context.Background()
	if err := store.Load(ctx); err != nil {
		logr.Sugar().Fatalw("failed to load ledger document", "error", err)
	}
	if cfg.Store.Seed {
		if seeded, err := store.SeedIfEmpty(ctx); err != nil {
			logr.Sugar().Fatalw("failed to seed ledger", "error", err)
		} else if seeded {
			logr.Info("example ledger created")
		}
	}

	validate := validator.New()
	studentRepo := repository.NewStudentRepository(store)
	paymentRepo := repository.NewPaymentRepository(store)
	entryRepo := repository.NewStaffExpenseRepository(store)

	studentSvc := service.NewStudentService(studentRepo, validate, logr)
	paymentSvc := service.NewPaymentService(paymentRepo, studentRepo, validate, logr)
	entrySvc := service.NewStaffExpenseService(entryRepo, validate, logr)

	studentHandler := handler.NewStudentHandler(studentSvc)
	paymentHandler := handler.NewPaymentHandler(paymentSvc, studentSvc, export.NewReceiptExporter())
	entryHandler := handler.NewStaffExpenseHandler(entrySvc)
	exportHandler := handler.NewExportHandler(studentSvc, paymentSvc, export.NewLedgerExporter())

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(metrics.Middleware())
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/students", studentHandler.List)
		api.POST("/students", studentHandler.Create)
		api.GET("/students/export", exportHandler.Students)
		api.GET("/students/:id", studentHandler.Get)
		api.PATCH("/students/:id", studentHandler.Update)
		api.GET("/students/:id/payments", paymentHandler.History)
		api.POST("/students/:id/payments", paymentHandler.Add)
		api.GET("/students/:id/payments/status", paymentHandler.Status)
		api.GET("/students/:id/payments/:paymentId/receipt", paymentHandler.Receipt)
		api.GET("/staff-expenses", entryHandler.List)
		api.POST("/staff-expenses", entryHandler.Save)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "backend", cfg.Store.Backend)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func newProvider(cfg *config.Config) (kvstore.Provider, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		return kvstore.NewMemory(), nil
	case config.BackendFile:
		return kvstore.NewFile(cfg.Store.FileDir)
	case config.BackendRedis:
		return kvstore.NewRedis(cfg.Redis)
	case config.BackendPostgres:
		pg, err := kvstore.NewPostgres(cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(context.Background()); err != nil {
			return nil, err
		}
		return pg, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Store.Backend)
	}
}
