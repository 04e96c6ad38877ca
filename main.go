package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sjsage522/kijijiworker/config"
	"sjsage522/kijijiworker/internal/scraper"
	"sjsage522/kijijiworker/internal/server"
	"sjsage522/kijijiworker/logger"
	"sjsage522/kijijiworker/services/publisher"
	"sjsage522/kijijiworker/services/worker"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("environment", cfg.Environment).
		Str("server_addr", cfg.ServerAddr).
		Str("kijiji_url", cfg.KijijiURL).
		Bool("publishing", cfg.PublishingEnabled()).
		Msg("Starting application")

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	kijiji := scraper.NewKijijiScraper(&cfg)

	// Start the optional scrape-and-publish worker
	var pub publisher.Publisher
	if cfg.PublishingEnabled() {
		pub = publisher.NewRedisPublisher(
			ctx,
			cfg.RedisAddr,
			cfg.RedisDB,
			cfg.RedisStream,
			cfg.RedisStreamCount,
			cfg.RedisStreamMaxLength,
		)
		defer pub.Close()

		logger.Info("Connected to Redis at %s (DB: %d, Stream: %s)",
			cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream)

		w := worker.NewWorker(ctx, kijiji, pub, cfg.ScrapeInterval)
		go func() {
			if err := w.Start(); err != nil && err != context.Canceled {
				log.Error().Err(err).Msg("Worker exited with error")
			}
		}()
	}

	// Start the HTTP server
	srv := server.New(cfg.ServerAddr, server.NewHandler(kijiji))

	serverDone := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.ServerAddr).Msg("Starting HTTP server")
		serverDone <- srv.ListenAndServe()
	}()

	// Wait for shutdown signal or server error
	select {
	case sig := <-sigChan:
		log.Info().
			Str("signal", sig.String()).
			Msg("Received shutdown signal")
	case err := <-serverDone:
		if err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Server exited with error")
		}
	}

	// Graceful shutdown
	log.Info().Msg("Shutting down gracefully...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}
}
