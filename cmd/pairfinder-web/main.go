package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-pairfinder/internal/config"
	"github.com/goliatone/go-pairfinder/internal/logging"
	"github.com/goliatone/go-pairfinder/internal/server"
	"github.com/goliatone/go-pairfinder/pkg/pairing"
	"github.com/goliatone/go-pairfinder/pkg/renderers/vanilla"
)

func main() {
	configFile := flag.String("config", "", "optional YAML configuration file")
	envFile := flag.String("env-file", ".env", "dotenv file loaded before the environment")
	flag.Parse()

	cfg, err := config.Load(config.Options{File: *configFile, EnvFiles: []string{*envFile}})
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	html, err := vanilla.New(vanilla.WithTheme(cfg.RendererTheme()))
	if err != nil {
		logger.Fatal("html renderer", zap.Error(err))
	}

	client := pairing.NewClient(
		pairing.WithTimeout(cfg.Timeout),
		pairing.WithLogger(logger),
	)

	srv, err := server.New(cfg, client, html, logger)
	if err != nil {
		logger.Fatal("server setup", zap.Error(err))
	}

	if !cfg.Controller().Configured() {
		logger.Warn("pairing endpoint not configured, searches will be refused",
			zap.String("env", config.EnvPrefix+"ENDPOINT"))
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Listen))
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
}
