package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	backupapp "github.com/emtienda/backend/internal/application/backup"
	catalogapp "github.com/emtienda/backend/internal/application/catalog"
	checkoutapp "github.com/emtienda/backend/internal/application/checkout"
	creditapp "github.com/emtienda/backend/internal/application/credit"
	reportapp "github.com/emtienda/backend/internal/application/report"
	settingsapp "github.com/emtienda/backend/internal/application/settings"
	"github.com/emtienda/backend/internal/infrastructure/config"
	"github.com/emtienda/backend/internal/infrastructure/logger"
	"github.com/emtienda/backend/internal/infrastructure/persistence"
	"github.com/emtienda/backend/internal/infrastructure/printing"
	"github.com/emtienda/backend/internal/interfaces/http/handler"
	"github.com/emtienda/backend/internal/interfaces/http/middleware"
	"github.com/emtienda/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting EM Tienda backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database with zap-backed GORM logging
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database ready", zap.String("path", cfg.Database.Path))

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	settingRepo := persistence.NewGormSettingRepository(db.DB,
		persistence.WithDefaultRate(decimal.NewFromFloat(cfg.App.DefaultExchangeRate)))
	txScope := persistence.NewGormTransactionScope(db.DB)
	restoreScope := persistence.NewGormRestoreScope(db.DB)

	// PDF rendering
	pdfRenderer, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{
		DefaultTimeout: cfg.Printing.RenderTimeout,
		RemoteURL:      cfg.Printing.RemoteChromeURL,
		NoSandbox:      cfg.Printing.NoSandbox,
		Logger:         log,
	})
	if err != nil {
		log.Fatal("Failed to initialize PDF renderer", zap.Error(err))
	}
	defer func() {
		if err := pdfRenderer.Close(); err != nil {
			log.Error("Error closing PDF renderer", zap.Error(err))
		}
	}()
	templateEngine := printing.NewTemplateEngine()

	// Application services
	productService := catalogapp.NewProductService(productRepo, settingRepo)
	checkoutService := checkoutapp.NewCheckoutService(productRepo, saleRepo, settingRepo, txScope)
	creditService := creditapp.NewCreditService(saleRepo)
	reportService := reportapp.NewReportService(productRepo, saleRepo, settingRepo)
	documentService := reportapp.NewDocumentService(reportService, templateEngine, pdfRenderer)
	rateService := settingsapp.NewRateService(settingRepo)
	snapshotService := backupapp.NewSnapshotService(productRepo, saleRepo, settingRepo, restoreScope, log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	engine.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewProductHandler(productService))
	r.Register(handler.NewCheckoutHandler(checkoutService))
	r.Register(handler.NewCreditHandler(creditService))
	r.Register(handler.NewReportHandler(reportService, documentService))
	r.Register(handler.NewSettingsHandler(rateService))
	r.Register(handler.NewBackupHandler(snapshotService))
	r.Setup()

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}

	log.Info("Server stopped")
}
