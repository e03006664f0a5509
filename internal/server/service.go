// Package server exposes the segmentation pipeline over HTTP/JSON.
package server

import (
	"log/slog"

	"github.com/okonta/docsegmenter/internal/export"
	"github.com/okonta/docsegmenter/internal/pipeline"
	"github.com/okonta/docsegmenter/internal/repository"
)

// Service bundles the pipeline, run store, and exporter behind the HTTP
// handlers.
type Service struct {
	logger    *slog.Logger
	processor *pipeline.Processor
	store     *repository.DB
	exporter  *export.Service
}

func NewService(logger *slog.Logger, processor *pipeline.Processor, store *repository.DB, exporter *export.Service) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		logger:    logger,
		processor: processor,
		store:     store,
		exporter:  exporter,
	}
}
