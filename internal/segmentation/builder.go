package segmentation

import (
	"fmt"
	"log/slog"

	"github.com/okonta/docsegmenter/internal/entity"
)

// DefaultMergeMinConfidence is the threshold below which a single-page
// segment is merged into its same-main-type predecessor.
const DefaultMergeMinConfidence = 0.6

// BuilderConfig holds thresholds and behavior flags for the segment builder.
type BuilderConfig struct {
	MergeMinConfidence float64 // default 0.6
	MergeLowConfidence bool    // run the singleton merge pass (default true)
}

// Builder groups annotated pages into homogeneous segments, one
// (main-type, sub-type) pair per segment.
type Builder struct {
	logger *slog.Logger
	cfg    BuilderConfig
}

func NewBuilder(logger *slog.Logger, cfg BuilderConfig) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MergeMinConfidence <= 0 {
		cfg.MergeMinConfidence = DefaultMergeMinConfidence
	}
	return &Builder{logger: logger, cfg: cfg}
}

// Build scans the annotated page sequence in order and emits one segment
// per homogeneous (main-type, sub-type) run, then merges weak singletons
// when configured to. Segment IDs are sequential, 1-based, assigned after
// the merge pass. Pages without an annotation count as UNKNOWN so that the
// output always partitions [1..N].
func (b *Builder) Build(records []entity.PageRecord) []entity.Segment {
	if len(records) == 0 {
		return nil
	}

	var segments []entity.Segment
	var current *entity.Segment

	for i := range records {
		pageNum := i + 1
		assignment := entity.UnknownAssignment()
		if records[i].Subtype != nil {
			assignment = *records[i].Subtype
		}

		switch {
		case current == nil:
			current = openSegment(pageNum, assignment)
		case assignment.SubType != current.SubType || assignment.MainType != current.MainType:
			segments = append(segments, *current)
			current = openSegment(pageNum, assignment)
		default:
			current.EndPage = pageNum
			current.Pages = append(current.Pages, pageNum)
			// Incremental average: each new page halves the weight of
			// everything before it, so later pages dominate. Not a true
			// mean.
			current.Confidence = (current.Confidence + assignment.Confidence) / 2
		}
	}
	segments = append(segments, *current)

	if b.cfg.MergeLowConfidence {
		segments = b.mergeSingletons(segments)
	}

	for i := range segments {
		segments[i].SegmentID = i + 1
	}

	b.logger.Debug("segments built", "count", len(segments), "pages", len(records))
	return segments
}

func openSegment(pageNum int, a entity.SubtypeAssignment) *entity.Segment {
	return &entity.Segment{
		StartPage:  pageNum,
		EndPage:    pageNum,
		Pages:      []int{pageNum},
		MainType:   a.MainType,
		SubType:    a.SubType,
		Confidence: a.Confidence,
	}
}

// mergeSingletons is a single forward pass: a one-page segment below the
// confidence threshold is absorbed into the immediately preceding output
// segment when main types match. Merging only ever looks backward, and an
// absorbed segment is never revisited.
func (b *Builder) mergeSingletons(segments []entity.Segment) []entity.Segment {
	if len(segments) <= 1 {
		return segments
	}

	merged := make([]entity.Segment, 0, len(segments))
	for i, seg := range segments {
		singlePage := seg.EndPage == seg.StartPage
		lowConfidence := seg.Confidence < b.cfg.MergeMinConfidence

		if singlePage && lowConfidence && i > 0 {
			prev := &merged[len(merged)-1]
			if prev.MainType == seg.MainType {
				prev.EndPage = seg.EndPage
				prev.Pages = append(prev.Pages, seg.Pages...)
				prev.SubType = prev.SubType + " + " + seg.SubType
				b.logger.Debug("merged low-confidence page into previous segment",
					"page", seg.StartPage,
					"confidence", fmt.Sprintf("%.2f", seg.Confidence),
				)
				continue
			}
		}

		merged = append(merged, seg)
	}
	return merged
}
