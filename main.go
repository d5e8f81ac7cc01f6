package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"airbnb-advisor/chat"
	"airbnb-advisor/config"
	"airbnb-advisor/recommend"
	"airbnb-advisor/server"
	"airbnb-advisor/services"
	"airbnb-advisor/storage"
	"airbnb-advisor/utils"
)

func main() {
	// ================== Bootstrap ====================
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("NYC Airbnb Advisor")
	logger.Info("Dataset: %s | Outlier cut: p%.0f | Top results: %d",
		cfg.CSVFilePath, cfg.OutlierPercentile, cfg.TopResults)

	// =============== Dataset Loading ===================
	csvStore := storage.NewCSVStore(logger)
	header, rows, err := csvStore.ReadRecords(cfg.CSVFilePath)
	if err != nil {
		logger.Error("Cannot load dataset: %v", err)
		logger.Error("Make sure the Airbnb CSV is available at %s", cfg.CSVFilePath)
		os.Exit(1)
	}

	// =========== Data Cleaning ======================
	cleaner := services.NewDataCleaner(logger, cfg.OutlierPercentile)
	dataset := cleaner.Clean(header, rows)
	if len(dataset.Listings) == 0 {
		logger.Error("No usable listings after cleaning — check the dataset columns")
		os.Exit(1)
	}

	// ========= CSV: export clean data ===========================
	if cfg.CleanCSVPath != "" {
		if err := csvStore.WriteListings(cfg.CleanCSVPath, dataset.Listings); err != nil {
			logger.Error("Failed to export clean CSV: %v", err)
			// Non-fatal: continue without the export
		}
	}

	// ========= PostgreSQL: store clean data (optional) ============
	if cfg.DatabaseURL != "" {
		var pgWriter *storage.PostgresWriter
		err := utils.RetryWithBackoff(cfg.MaxRetries, func() error {
			var connErr error
			pgWriter, connErr = storage.NewPostgresWriter(cfg.DatabaseURL, logger)
			return connErr
		}, logger)
		if err != nil {
			logger.Error("Cannot connect to PostgreSQL: %v", err)
			os.Exit(1)
		}
		defer pgWriter.Close()

		if err := pgWriter.CreateTable(); err != nil {
			logger.Error("Failed to create DB table: %v", err)
			os.Exit(1)
		}
		if err := pgWriter.SaveClean(dataset.Listings); err != nil {
			logger.Error("Failed to insert into PostgreSQL: %v", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("DATABASE_URL not set — skipping PostgreSQL persistence")
	}

	// ==== Insights ============================
	insightSvc := services.NewInsightService(logger)
	report := insightSvc.Generate(dataset)
	services.PrintInsightReport(report)

	// ==== Engine and API ============================
	engine := recommend.NewEngine(dataset, cfg.TopResults, logger)
	searchSvc := services.NewSearchService(dataset)
	forecastSvc := services.NewForecastService(dataset)

	assistant := chat.NewClient(cfg, logger)
	var sysPrompt chat.Message
	if assistant != nil {
		sysPrompt, err = chat.SystemPrompt(report.NeighbourhoodStats)
		if err != nil {
			logger.Error("Failed to build assistant system prompt: %v", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("OPENAI_API_KEY not set — LLM assistant endpoint disabled")
	}

	handlers := server.NewHandlers(engine, searchSvc, forecastSvc, report, assistant, sysPrompt, logger)
	srv := server.NewServer(cfg.ListenAddr, handlers, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Server error: %v", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("Received %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			logger.Error("Graceful shutdown failed: %v", err)
		}
	}
}
