package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/okonta/docsegmenter/constants"
)

// PageRange is a contiguous, inclusive range of 1-indexed page numbers.
type PageRange struct {
	Start int `json:"start_page"`
	End   int `json:"end_page"`
}

// Segment is a contiguous run of pages assigned one (main-type, sub-type)
// pair. Across all segments of a run the ranges partition [1..N] exactly.
type Segment struct {
	SegmentID  int                `json:"segment_id"`
	StartPage  int                `json:"start_page"`
	EndPage    int                `json:"end_page"`
	Pages      []int              `json:"pages"`
	MainType   constants.MainType `json:"main_type"`
	SubType    constants.SubType  `json:"sub_type"`
	Confidence float64            `json:"confidence"`

	// Extraction routing, filled from the eligibility table once the
	// segment is terminal.
	RequiresExtraction bool `json:"requires_extraction"`
	Priority           int  `json:"priority"`
}

// ClassificationResult is the multi-factor classifier's verdict for one
// segment's page range.
type ClassificationResult struct {
	SegmentID    int                            `json:"segment_id"`
	DocumentType constants.MainType             `json:"document_type"`
	Confidence   float64                        `json:"confidence"`
	Reasoning    string                         `json:"reasoning"`
	SegmentPages []int                          `json:"segment_pages"`
	Scores       map[constants.MainType]float64 `json:"scores"`
}

// Run bundles the outputs of one processing pass over a document.
type Run struct {
	ID              uuid.UUID              `json:"id"`
	PageCount       int                    `json:"page_count"`
	CreatedAt       time.Time              `json:"created_at"`
	Segments        []Segment              `json:"segments"`
	Classifications []ClassificationResult `json:"classifications"`
}
