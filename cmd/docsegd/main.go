package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/okonta/docsegmenter/internal/common"
	"github.com/okonta/docsegmenter/internal/export"
	"github.com/okonta/docsegmenter/internal/pipeline"
	"github.com/okonta/docsegmenter/internal/repository"
	"github.com/okonta/docsegmenter/internal/server"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := common.LoadConfig(*configPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := repository.Open(cfg.Database.Path)
	if err != nil {
		logger.Error("open database", "path", cfg.Database.Path, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	processor := pipeline.NewProcessor(logger, pipeline.Config{
		MergeMinConfidence: cfg.Segmentation.MergeMinConfidence,
		MergeLowConfidence: cfg.Segmentation.MergeLowConfidence,
	})
	svc := server.NewService(logger, processor, store, export.NewService(logger))

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: svc.Router(),
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.Addr, "db", store.Path())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown", "error", err)
	}
}
