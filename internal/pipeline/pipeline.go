// Package pipeline wires the per-page detectors and the segment builder
// into one processing pass over a document's page records.
package pipeline

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/okonta/docsegmenter/constants"
	"github.com/okonta/docsegmenter/internal/classify"
	"github.com/okonta/docsegmenter/internal/entity"
	"github.com/okonta/docsegmenter/internal/pages"
	"github.com/okonta/docsegmenter/internal/segmentation"
	"github.com/okonta/docsegmenter/internal/subtype"
)

// Config holds thresholds and behavior flags for a processing run.
type Config struct {
	MergeMinConfidence float64 // default 0.6
	MergeLowConfidence bool    // merge weak singleton segments
}

// Processor coordinates sub-type annotation, cross-type resolution, segment
// building, and main-type classification. All steps are synchronous and
// operate only on their inputs.
type Processor struct {
	logger     *slog.Logger
	builder    *segmentation.Builder
	classifier *classify.Classifier
}

func NewProcessor(logger *slog.Logger, cfg Config) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger: logger,
		builder: segmentation.NewBuilder(logger, segmentation.BuilderConfig{
			MergeMinConfidence: cfg.MergeMinConfidence,
			MergeLowConfidence: cfg.MergeLowConfidence,
		}),
		classifier: classify.New(logger),
	}
}

// Process runs the full flow over an ordered page-record sequence and
// returns a Run whose segments partition [1..N]. The records are annotated
// in place with their sub-type assignments.
func (p *Processor) Process(records []entity.PageRecord) *entity.Run {
	run := &entity.Run{
		ID:        uuid.New(),
		PageCount: len(records),
		CreatedAt: time.Now().UTC(),
	}
	if len(records) == 0 {
		return run
	}

	p.annotate(records)
	p.resolveCrossFamily(records)

	run.Segments = p.builder.Build(records)
	for i := range run.Segments {
		seg := &run.Segments[i]
		eligibility := constants.EligibilityFor(seg.MainType, seg.SubType)
		seg.RequiresExtraction = eligibility.RequiresExtraction
		seg.Priority = eligibility.Priority

		result := p.classifier.Segment(seg.Pages, records)
		result.SegmentID = seg.SegmentID
		run.Classifications = append(run.Classifications, result)
	}

	p.logger.Info("run processed",
		"run_id", run.ID,
		"pages", run.PageCount,
		"segments", len(run.Segments),
	)
	return run
}

// ClassifyBoundaries is the hint-boundary path: ranges come straight from
// the vision layer's start-of-document flags and each range is classified
// as-is, with no sub-type grouping.
func (p *Processor) ClassifyBoundaries(records []entity.PageRecord) []entity.ClassificationResult {
	boundaries := segmentation.DetectBoundaries(records)
	return p.classifier.Boundaries(boundaries, records)
}

// annotate attaches a sub-type assignment to every page. Pages with no
// resolvable payload get the UNKNOWN assignment so that downstream grouping
// still covers every page.
func (p *Processor) annotate(records []entity.PageRecord) {
	for i := range records {
		pageNum := i + 1
		payload, ok := pages.Lookup(records, pageNum)
		if !ok {
			unknown := entity.UnknownAssignment()
			records[i].Subtype = &unknown
			continue
		}
		assignment := subtype.Detect(payload.TextSnippets)
		records[i].Subtype = &assignment
	}
}

// resolveCrossFamily reassigns the main type of cross-family sub-types
// (CA certificates) by majority vote over the other pages inside the same
// hint boundary.
func (p *Processor) resolveCrossFamily(records []entity.PageRecord) {
	boundaries := segmentation.DetectBoundaries(records)
	for _, b := range boundaries {
		for pageNum := b.Start; pageNum <= b.End; pageNum++ {
			assignment := records[pageNum-1].Subtype
			if assignment == nil || !constants.IsCrossFamily(assignment.SubType) {
				continue
			}

			var neighbors []entity.SubtypeAssignment
			for other := b.Start; other <= b.End; other++ {
				if other == pageNum || records[other-1].Subtype == nil {
					continue
				}
				neighbors = append(neighbors, *records[other-1].Subtype)
			}
			resolved := subtype.ResolveCrossType(neighbors)
			if resolved != assignment.MainType {
				p.logger.Debug("cross-family sub-type reassigned",
					"page", pageNum,
					"sub_type", assignment.SubType,
					"from", assignment.MainType,
					"to", resolved,
				)
				assignment.MainType = resolved
			}
		}
	}
}
