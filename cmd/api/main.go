package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expense-insight-api/internal/config"
	"expense-insight-api/internal/handlers"
	custommw "expense-insight-api/internal/middleware"
	"expense-insight-api/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	var metrics services.MetricsRecorderInterface
	if cfg.Analysis.MetricsEnabled {
		metrics = services.NewPrometheusMetrics()
	} else {
		metrics = services.NewNoopMetricsRecorder()
	}

	// OCR, PDF extraction and the trained category classifier are
	// external capabilities. None ship with the binary; the endpoints
	// that need them degrade until clients are plugged in here.
	var ocr services.OCRClientInterface
	var pdf services.PDFTextExtractorInterface
	var classifier services.CategoryClassifierInterface
	slog.Warn("no OCR client configured, image receipt endpoint will report unavailable")
	slog.Warn("no PDF extractor configured, PDF receipt endpoint will report unavailable")

	parser := services.NewReceiptParser(
		services.NewCategoryMatcher(),
		services.NewAmountExtractor(metrics),
		services.NewDateExtractor(nil),
		services.NewItemExtractor(),
		classifier,
		metrics,
	)
	analysis := services.NewAnalysisService(nil, metrics)
	generator := services.NewReceiptGenerator(uint64(cfg.Analysis.MockSeed), nil)

	receiptHandler := handlers.NewReceiptHandler(parser, ocr, pdf)
	analysisHandler := handlers.NewAnalysisHandler(analysis)
	healthHandler := handlers.NewHealthCheckHandler()
	devHandler := handlers.NewDevHandler(generator, parser)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler

	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.RateLimiterWithConfig(
		cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	e.Use(echomw.BodyLimit(cfg.Security.MaxBodySize))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/process", receiptHandler.ProcessText)
	api.POST("/process-image-receipt", receiptHandler.ProcessImageReceipt)
	api.POST("/process-pdf-receipt", receiptHandler.ProcessPDFReceipt)
	api.POST("/analyze-financials", analysisHandler.AnalyzeFinancials)

	if cfg.IsDevelopment() {
		api.POST("/dev/mock-receipt", devHandler.GenerateMockReceipt)
		slog.Info("development endpoints enabled")
	}

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("starting server",
			"addr", server.Addr,
			"environment", cfg.Server.Environment)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "error", err.Error())
	}
}
