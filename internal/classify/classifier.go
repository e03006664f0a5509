// Package classify scores a segment's page range into a main document type
// using four weighted factors: vision hints, keyword matches, structural
// signals, and document-structure flags.
package classify

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/okonta/docsegmenter/constants"
	"github.com/okonta/docsegmenter/internal/entity"
	"github.com/okonta/docsegmenter/internal/pages"
)

// Factor weights. They sum to 100 so a type's total reads as a percentage.
const (
	weightHints     = 40.0
	weightKeywords  = 30.0
	weightStructure = 20.0
	weightFlags     = 10.0
)

// Classifier resolves each page through the pages normalizer and scores the
// segment for every candidate main type.
type Classifier struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{logger: logger}
}

// Segment classifies one page range. Pages whose payload cannot be resolved
// are excluded from every denominator; if none resolve the result is
// UNKNOWN with zero confidence, which is a normal outcome rather than an
// error.
func (c *Classifier) Segment(segmentPages []int, records []entity.PageRecord) entity.ClassificationResult {
	var payloads []*entity.PagePayload
	for _, pageNum := range segmentPages {
		if payload, ok := pages.Lookup(records, pageNum); ok {
			payloads = append(payloads, payload)
		}
	}

	if len(payloads) == 0 {
		c.logger.Debug("segment has no valid page data", "pages", segmentPages)
		return entity.ClassificationResult{
			DocumentType: constants.MainTypeUnknown,
			Confidence:   0.0,
			Reasoning:    "no valid page data",
			SegmentPages: segmentPages,
			Scores: map[constants.MainType]float64{
				constants.MainTypeWorkOrder: 0.0,
				constants.MainTypeTurnover:  0.0,
			},
		}
	}

	var woScore, toScore float64
	valid := float64(len(payloads))

	// Factor 1: vision type hints.
	var woHints, toHints int
	for _, p := range payloads {
		if p.HintsType(constants.MainTypeWorkOrder) {
			woHints++
		}
		if p.HintsType(constants.MainTypeTurnover) {
			toHints++
		}
	}
	woScore += float64(woHints) / valid * weightHints
	toScore += float64(toHints) / valid * weightHints

	// Factor 2: distinct keyword phrases found in the combined text.
	var snippets []string
	for _, p := range payloads {
		snippets = append(snippets, p.TextSnippets...)
	}
	combinedText := strings.ToLower(strings.Join(snippets, " "))

	woMatches := countKeywords(combinedText, constants.WorkOrderKeywords)
	toMatches := countKeywords(combinedText, constants.TurnoverKeywords)

	totalMatches := woMatches + toMatches
	if totalMatches < 1 {
		totalMatches = 1
	}
	woScore += float64(woMatches) / float64(totalMatches) * weightKeywords
	toScore += float64(toMatches) / float64(totalMatches) * weightKeywords

	// Factor 3: structural signals. A certificate page points at a work
	// order; financial-statement vocabulary points at turnover.
	certificatePage := false
	for _, p := range payloads {
		if p.PageKind == constants.PageKindCertificate {
			certificatePage = true
			break
		}
	}
	if certificatePage {
		woScore += weightStructure
	}
	if strings.Contains(combinedText, "financial") ||
		strings.Contains(combinedText, "balance") ||
		strings.Contains(combinedText, "profit and loss") {
		toScore += weightStructure
	}

	// Factor 4: document-structure flags. Tables are ambiguous and score
	// for both types; forms score for work orders only.
	var anyTables, anyForms bool
	for _, p := range payloads {
		anyTables = anyTables || p.Structure.HasTables
		anyForms = anyForms || p.Structure.HasForms
	}
	if anyTables {
		woScore += weightFlags / 2
		toScore += weightFlags / 2
	}
	if anyForms {
		woScore += weightFlags / 2
	}

	if woScore > 100 {
		woScore = 100
	}
	if toScore > 100 {
		toScore = 100
	}

	result := entity.ClassificationResult{
		SegmentPages: segmentPages,
		Scores: map[constants.MainType]float64{
			constants.MainTypeWorkOrder: woScore,
			constants.MainTypeTurnover:  toScore,
		},
	}

	switch {
	case woScore > toScore:
		result.DocumentType = constants.MainTypeWorkOrder
		result.Confidence = woScore / 100
		result.Reasoning = buildReasoning(constants.MainTypeWorkOrder, woHints, woMatches, certificatePage)
	case toScore > woScore:
		result.DocumentType = constants.MainTypeTurnover
		result.Confidence = toScore / 100
		result.Reasoning = buildReasoning(constants.MainTypeTurnover, toHints, toMatches, false)
	default:
		// Equal totals: prefer the type with more hints, work order on a
		// full tie. Confidence is pinned at 0.5 either way.
		result.Confidence = 0.5
		if woHints >= toHints {
			result.DocumentType = constants.MainTypeWorkOrder
			result.Reasoning = "tie - defaulting to WORK_ORDER"
		} else {
			result.DocumentType = constants.MainTypeTurnover
			result.Reasoning = "tie - defaulting to TURNOVER"
		}
	}

	c.logger.Debug("segment classified",
		"pages", segmentPages,
		"type", result.DocumentType,
		"confidence", fmt.Sprintf("%.2f", result.Confidence),
	)
	return result
}

// Boundaries classifies every hint-derived page range, assigning sequential
// 1-based segment IDs.
func (c *Classifier) Boundaries(boundaries []entity.PageRange, records []entity.PageRecord) []entity.ClassificationResult {
	results := make([]entity.ClassificationResult, 0, len(boundaries))
	for i, b := range boundaries {
		segmentPages := make([]int, 0, b.End-b.Start+1)
		for p := b.Start; p <= b.End; p++ {
			segmentPages = append(segmentPages, p)
		}
		result := c.Segment(segmentPages, records)
		result.SegmentID = i + 1
		results = append(results, result)
	}
	return results
}

func countKeywords(text string, keywords []string) int {
	matches := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			matches++
		}
	}
	return matches
}

func buildReasoning(docType constants.MainType, hintCount, keywordCount int, certificatePage bool) string {
	var reasons []string
	if hintCount > 0 {
		reasons = append(reasons, fmt.Sprintf("found %d hint(s) for %s", hintCount, docType))
	}
	if keywordCount > 0 {
		reasons = append(reasons, fmt.Sprintf("%d keyword matches", keywordCount))
	}
	if certificatePage && docType == constants.MainTypeWorkOrder {
		reasons = append(reasons, "contains certificate page")
	}
	if len(reasons) == 0 {
		reasons = append(reasons, fmt.Sprintf("pattern match for %s document structure", docType))
	}
	return strings.Join(reasons, "; ")
}
