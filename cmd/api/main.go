package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"moonshot-trading-api/internal/chain"
	"moonshot-trading-api/internal/config"
	"moonshot-trading-api/internal/moonshot"
	"moonshot-trading-api/internal/server"
	"moonshot-trading-api/internal/trading"
)

// env bootstrap function
func loadEnv(logger *logrus.Logger) {
	// Get the project root directory (where go.mod is)
	_, filename, _, _ := runtime.Caller(0)
	projectRoot := filepath.Join(filepath.Dir(filename), "../..")
	envPath := filepath.Join(projectRoot, ".env")

	if err := godotenv.Load(envPath); err != nil {
		logger.Warnf("no .env file found at %s, using system environment variables", envPath)
	} else {
		logger.Infof("loaded .env from %s", envPath)
	}
}

// main is the entry point for the trading API server.
// It wires the chain client, curve client, assembler, and relay into the
// HTTP server, then runs until interrupted.
func main() {
	// Initialize structured logger with custom formatting
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logger.SetLevel(logrus.InfoLevel)

	// load .env BEFORE anything reads os.Getenv
	loadEnv(logger)

	// Load and validate configuration from environment variables.
	// Missing RPC_URL or FEE_WALLET refuses to start.
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}

	// Create context for graceful shutdown
	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling for graceful shutdown (Ctrl+C, SIGTERM)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	// One long-lived network client shared by all requests; it holds no
	// per-request state and is never reconnected per request.
	chainClient, err := chain.NewClient(chain.ClientConfig{
		RPCURL:       cfg.RPCUrl,
		Timeout:      cfg.HTTPTimeout,
		MaxRetries:   cfg.MaxRetries,
		RetryBackoff: cfg.RetryBackoff,
		Logger:       logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create chain client")
	}

	curveClient, err := moonshot.NewClient(chainClient, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to create curve client")
	}

	assembler, err := trading.NewAssembler(curveClient, chainClient, cfg.FeeWalletKey, cfg.MintKey, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to create assembler")
	}

	relay, err := trading.NewRelay(chainClient, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to create relay")
	}

	// Create handlers with all dependencies injected
	h := &server.Handlers{
		Assembler: assembler,
		Relay:     relay,
		DevMode:   cfg.DevMode,
		Logger:    logger,
	}

	// Create HTTP server with configuration and handlers
	srv, err := server.NewServer(h, server.ServerConfig{
		Addr:    cfg.Addr,
		DevMode: cfg.DevMode,
		APIKey:  cfg.APIKey,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create http server")
	}

	// Setup graceful shutdown in a separate goroutine
	go func() {
		<-sigCh // Wait for shutdown signal
		logger.Info("shutting down")
		cancel()                               // Cancel context to stop ongoing operations
		_ = srv.Shutdown(context.Background()) // Gracefully shutdown HTTP server
	}()

	// Start the HTTP server
	logger.WithFields(logrus.Fields{
		"addr":       cfg.Addr,
		"fee_wallet": cfg.FeeWallet,
		"mint":       cfg.MintAddress,
	}).Info("trading api starting")
	if err := srv.Start(); err != nil {
		// "http: Server closed" is expected during graceful shutdown
		if err.Error() == "http: Server closed" {
			return
		}
		logger.WithError(err).Fatal("trading api failed")
	}

	// Wait for server to be fully shut down
	if err := srv.WaitClosed(context.Background()); err != nil {
		fmt.Println(err)
	}
}
