package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelplan-service/internal/infrastructure/config"
	"travelplan-service/internal/infrastructure/persistence"
	"travelplan-service/internal/infrastructure/router"
	"travelplan-service/internal/interface/api"
	"travelplan-service/internal/interface/repository"
	"travelplan-service/internal/usecase"
	"travelplan-service/pkg/logger"
	"travelplan-service/pkg/metrics"
	"travelplan-service/pkg/parser"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	log := logger.NewLogger()
	defer log.Sync()
	log.Info("Starting Travelplan Service")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Info("Connecting to MongoDB")
	mongoClient, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	db := persistence.GetDatabase(mongoClient, cfg.MongoDB)

	gormDB, err := persistence.NewPostgresDB(cfg.PostgresURI)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up repositories
	airlineRepo := repository.NewGormAirlineRepository(gormDB)
	responseRepo := repository.NewMongoAgentResponseRepository(db)
	itineraryRepo := repository.NewMongoItineraryRepository(db)

	m := metrics.NewMetrics(cfg.MetricsNamespace)
	responseParser := parser.NewResponseParser(log)

	processor := usecase.NewItineraryProcessor(responseParser, airlineRepo, responseRepo, itineraryRepo, m, log)
	orchestrator := usecase.NewResponseOrchestrator(responseRepo, processor, cfg.BatchSize, log)

	// Start response processor in a goroutine
	go func() {
		processTicker := time.NewTicker(cfg.PollInterval)
		defer processTicker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("Response processor stopped")
				return
			case <-processTicker.C:
				if err := orchestrator.ProcessPendingResponses(ctx); err != nil {
					m.ErrorsCount.WithLabelValues("process_pending").Inc()
					log.Error("Error processing agent responses", "error", err)
				}
			}
		}
	}()

	handler := api.NewHandler(responseParser, router.NewDefaultCategoryRouter(log), responseRepo, itineraryRepo, cfg.ParseCacheTTL, log)
	e := api.NewServer(handler, prometheus.DefaultGatherer, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port, "version", cfg.AppVersion)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Travelplan Service stopped")
}
