package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/okonta/docsegmenter/internal/export"
	"github.com/okonta/docsegmenter/internal/ingest"
	"github.com/okonta/docsegmenter/internal/pipeline"
	"github.com/okonta/docsegmenter/internal/segmentation"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		in        = flag.String("in", "", "path to page-analysis JSON from the vision layer (required)")
		out       = flag.String("out", "", "output JSON file path (defaults to stdout)")
		xlsx      = flag.String("xlsx", "", "optional XLSX segment report path")
		threshold = flag.Float64("merge-threshold", segmentation.DefaultMergeMinConfidence, "singleton merge confidence threshold")
		noMerge   = flag.Bool("no-merge", false, "disable the singleton merge pass")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *in == "" {
		printError("Error: --in is required\n")
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	data, err := os.ReadFile(*in)
	if err != nil {
		printError("Error: read input: %v\n", err)
		os.Exit(1)
	}

	records, err := ingest.DecodeRecords(data)
	if err != nil {
		printError("Error: invalid page records: %v\n", err)
		os.Exit(1)
	}

	processor := pipeline.NewProcessor(logger, pipeline.Config{
		MergeMinConfidence: *threshold,
		MergeLowConfidence: !*noMerge,
	})
	run := processor.Process(records)

	encoded, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		printError("Error: encode run: %v\n", err)
		os.Exit(1)
	}

	if *out == "" {
		fmt.Println(string(encoded))
	} else if err := os.WriteFile(*out, encoded, 0o644); err != nil {
		printError("Error: write output: %v\n", err)
		os.Exit(1)
	}

	if *xlsx != "" {
		report, err := export.NewService(logger).ExportSegmentsXLSX(run)
		if err != nil {
			printError("Error: build report: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsx, report, 0o644); err != nil {
			printError("Error: write report: %v\n", err)
			os.Exit(1)
		}
	}

	logger.Info("done", "pages", run.PageCount, "segments", len(run.Segments))
}
