package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/wonny/valuescan/internal/api"
	"github.com/wonny/valuescan/internal/domain/scorecard"
	"github.com/wonny/valuescan/internal/infra/database/postgres"
	"github.com/wonny/valuescan/internal/pkg/config"
	"github.com/wonny/valuescan/internal/pkg/logger"
	"github.com/wonny/valuescan/internal/service/analysis"
	engine "github.com/wonny/valuescan/internal/strategy/scorecard"
)

const (
	serviceName    = "valuescan-api"
	serviceVersion = "1.0.0"
)

func main() {
	// Set timezone to Asia/Seoul (KST)
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load timezone")
	}
	time.Local = loc

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	if err := logger.Init(logger.Config{
		Level:          cfg.Logging.Level,
		Format:         cfg.Logging.Format,
		FileEnabled:    cfg.Logging.FileEnabled,
		FilePath:       cfg.Logging.FilePath,
		RotationSize:   cfg.Logging.RotationSize,
		RetentionDays:  cfg.Logging.RetentionDays,
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize logger")
	}

	log.Info().
		Str("version", serviceVersion).
		Msg("🚀 Starting ValueScan API Server...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection
	dbPool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbPool.Close()

	// Scoring criteria: built-in defaults unless a criteria file is set
	criteria, err := loadCriteria(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load scoring criteria")
	}

	eng, err := engine.NewEngine(criteria)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build scoring engine")
	}

	// Repositories and services
	metricsRepo := postgres.NewMetricsRepository(dbPool)
	analysisRepo := postgres.NewAnalysisRepository(dbPool)
	analysisSvc := analysis.NewService(eng, metricsRepo, analysisRepo)

	// Router with middleware chain
	router := api.NewRouter(cfg, dbPool, analysisSvc, serviceVersion)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().
			Str("address", addr).
			Msg("🎯 API Server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start API server")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("🛑 Shutdown signal received, stopping server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("👋 ValueScan API Server stopped")
}

func loadCriteria(cfg *config.Config) (*scorecard.Criteria, error) {
	if cfg.Analysis.CriteriaFile == "" {
		return nil, nil
	}
	log.Info().Str("file", cfg.Analysis.CriteriaFile).Msg("Loading criteria override")
	return scorecard.LoadCriteriaFile(cfg.Analysis.CriteriaFile)
}
