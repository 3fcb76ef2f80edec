package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/depotlabs/filedepot/internal/logger"
	"github.com/depotlabs/filedepot/internal/server"
	"github.com/depotlabs/filedepot/pkg/auth"
	"github.com/depotlabs/filedepot/pkg/config"
	"github.com/depotlabs/filedepot/pkg/files"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (default: ./filedepot.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure logger
	logger.SetLevel(cfg.Logging.Level)

	fmt.Println("FileDepot - File Metadata Service")
	logger.Info("Log level set to: %s", cfg.Logging.Level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	records, err := config.CreateRecordStore(ctx, &cfg.Records)
	if err != nil {
		log.Fatalf("Failed to create record store: %v", err)
	}
	logger.Info("Record store ready (%s)", cfg.Records.Type)

	sessions, err := config.CreateSessionCache(ctx, &cfg.Sessions)
	if err != nil {
		log.Fatalf("Failed to create session cache: %v", err)
	}
	logger.Info("Session cache ready (%s, ttl %v)", cfg.Sessions.Type, cfg.Sessions.TTL)

	payloads, err := config.CreatePayloadStore(ctx, &cfg.Payloads)
	if err != nil {
		log.Fatalf("Failed to create payload store: %v", err)
	}
	logger.Info("Payload store ready (%s)", cfg.Payloads.Type)

	srv := server.New(server.Options{
		Port:      cfg.Server.Port,
		RateLimit: cfg.Server.RateLimit,
		RateBurst: cfg.Server.RateBurst,
	}, server.Deps{
		Records:  records,
		Sessions: sessions,
		Auth:     auth.NewManager(records, sessions, cfg.Sessions.TTL),
		Files:    files.NewWorkflow(records, payloads),
	})

	// Start server in background
	serverDone := make(chan error, 1)
	go func() {
		serverDone <- srv.Serve()
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Server is running on port %d. Press Ctrl+C to stop.", cfg.Server.Port)

	select {
	case <-sigChan:
		logger.Info("Shutdown signal received, initiating graceful shutdown...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error: %v", err)
		}
		if err := <-serverDone; err != nil {
			logger.Error("Server error: %v", err)
		}

	case err := <-serverDone:
		if err != nil {
			logger.Error("Server error: %v", err)
		}
	}

	if err := sessions.Close(); err != nil {
		logger.Error("Session cache close error: %v", err)
	}
	if err := records.Close(context.Background()); err != nil {
		logger.Error("Record store close error: %v", err)
	}

	logger.Info("Server stopped gracefully")
}
