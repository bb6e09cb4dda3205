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

	"github.com/goliatone/go-pairfinder/components/mockpairs"
	"github.com/goliatone/go-pairfinder/internal/config"
	"github.com/goliatone/go-pairfinder/internal/logging"
)

func main() {
	listen := flag.String("listen", ":8081", "address to listen on")
	basePath := flag.String("base-path", "", "path prefix for the search route")
	limit := flag.Int("limit", 3, "maximum pairs per response")
	failStatus := flag.Int("fail-status", 0, "answer every search with this status code")
	failMessage := flag.String("fail-message", "", "error message sent with -fail-status")
	logFormat := flag.String("log-format", "console", "log format: json or console")
	flag.Parse()

	logger, err := logging.New(config.LogConfig{Level: "info", Format: *logFormat})
	if err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	fns := []mockpairs.OptionFn{mockpairs.WithPairLimit(*limit)}
	if *failStatus > 0 {
		fns = append(fns, mockpairs.WithFailure(*failStatus, *failMessage))
	}

	mux := http.NewServeMux()
	path, err := mockpairs.RegisterRoutes(mux, *basePath, fns...)
	if err != nil {
		logger.Fatal("register routes", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              *listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("mock pairing service listening",
			zap.String("addr", *listen),
			zap.String("search", path),
			zap.String("contract", path+mockpairs.ContractSuffix),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("mock server forced to shutdown", zap.Error(err))
	}
}
