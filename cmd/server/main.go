package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appinvoicing "github.com/invoicing/backend/internal/application/invoicing"
	"github.com/invoicing/backend/internal/infrastructure/config"
	"github.com/invoicing/backend/internal/infrastructure/logger"
	"github.com/invoicing/backend/internal/infrastructure/pdf"
	"github.com/invoicing/backend/internal/infrastructure/persistence"
	"github.com/invoicing/backend/internal/interfaces/http/handler"
	"github.com/invoicing/backend/internal/interfaces/http/middleware"
	"github.com/invoicing/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting invoicing backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)

	renderer := newRenderer(cfg, log)
	defer func() {
		if err := renderer.Close(); err != nil {
			log.Error("Error closing PDF renderer", zap.Error(err))
		}
	}()

	companyService := appinvoicing.NewCompanyService(companyRepo, invoiceRepo)
	customerService := appinvoicing.NewCustomerService(customerRepo, invoiceRepo)
	invoiceService := appinvoicing.NewInvoiceService(invoiceRepo, companyRepo, customerRepo)
	exportService := appinvoicing.NewExportService(invoiceRepo, renderer, log)

	companyHandler := handler.NewCompanyHandler(companyService)
	customerHandler := handler.NewCustomerHandler(customerService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService, exportService)
	systemHandler := handler.NewSystemHandler(db)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(companyHandler).
		Register(customerHandler).
		Register(invoiceHandler).
		Register(systemHandler).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}

// newRenderer selects the PDF backend from configuration
func newRenderer(cfg *config.Config, log *zap.Logger) pdf.Renderer {
	if cfg.PDF.Provider == "chrome" {
		log.Info("Using Chrome PDF renderer", zap.Duration("timeout", cfg.PDF.RenderTimeout))
		return pdf.NewChromedpRenderer(&pdf.ChromedpConfig{
			Timeout: cfg.PDF.RenderTimeout,
			Logger:  log,
		})
	}
	return pdf.NewGofpdfRenderer()
}
