package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	pairfinder "github.com/goliatone/go-pairfinder"
	"github.com/goliatone/go-pairfinder/internal/config"
	"github.com/goliatone/go-pairfinder/internal/logging"
	"github.com/goliatone/go-pairfinder/pkg/controller"
	"github.com/goliatone/go-pairfinder/pkg/pairing"
	"github.com/goliatone/go-pairfinder/pkg/renderers/tui"
	"github.com/goliatone/go-pairfinder/pkg/renderers/vanilla"
)

func main() {
	configFile := flag.String("config", "", "optional YAML configuration file")
	envFile := flag.String("env-file", ".env", "dotenv file loaded before the environment")
	endpoint := flag.String("endpoint", "", "pairing service endpoint (overrides configuration)")
	region := flag.String("region", "", "region to search; skips the prompts when set with -types")
	types := flag.String("types", "", "comma-separated location types")
	repeat := flag.Bool("repeat", false, "offer another search after each result")
	format := flag.String("format", pairfinder.RendererText, "result format: text or html")
	flag.Parse()

	cfg, err := config.Load(config.Options{File: *configFile, EnvFiles: []string{*envFile}})
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if strings.TrimSpace(*endpoint) != "" {
		cfg.Endpoint = strings.TrimSpace(*endpoint)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := tui.NewSession(tui.WithRepeat(*repeat))
	client := pairing.NewClient(pairing.WithTimeout(cfg.Timeout), pairing.WithLogger(logger))

	renderers, err := pairfinder.Renderers(vanilla.WithTheme(cfg.RendererTheme()))
	if err != nil {
		logger.Fatal("renderer setup", zap.Error(err))
	}

	ctrl, err := pairfinder.NewController(cfg.Controller(), session, client, renderers, *format, controller.WithLogger(logger))
	if err != nil {
		logger.Fatal("controller setup", zap.Error(err))
	}

	if *region != "" || *types != "" {
		session.Prefill(*region, splitTypes(*types))
		err = ctrl.OnSubmit(ctx)
		if outErr := session.Err(); outErr != nil {
			logger.Fatal("write output", zap.Error(outErr))
		}
		if err != nil {
			if _, notified := controller.Notification(err); notified {
				os.Exit(2)
			}
			logger.Fatal("search failed", zap.Error(err))
		}
		return
	}

	if err := session.Run(ctx, ctrl); err != nil {
		if errors.Is(err, tui.ErrAborted) {
			return
		}
		logger.Fatal("session failed", zap.Error(err))
	}
}

func splitTypes(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
