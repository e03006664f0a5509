// Package subtype detects the specific document kind of a page from its
// extracted text, using the static keyword catalog in constants.
package subtype

import (
	"strings"

	"github.com/okonta/docsegmenter/constants"
	"github.com/okonta/docsegmenter/internal/entity"
)

// minConfidence is the floor for any positive keyword match: a hit is never
// reported with a near-zero score that would be indistinguishable from no
// match at all.
const minConfidence = 0.3

// Detect classifies text snippets into a (main-type, sub-type, confidence)
// triple by counting keyword occurrences against every catalog entry. Ties
// go to the entry declared first. Zero matches yield (UNKNOWN, "Unknown", 0).
func Detect(snippets []string) entity.SubtypeAssignment {
	if len(snippets) == 0 {
		return entity.UnknownAssignment()
	}

	text := strings.ToLower(strings.Join(snippets, " "))

	bestIdx := -1
	bestMatches := 0
	for i := range constants.SubtypeCatalog {
		matches := 0
		for _, kw := range constants.SubtypeCatalog[i].Keywords {
			if strings.Contains(text, kw) {
				matches++
			}
		}
		// Strict > keeps the first-declared entry on ties.
		if matches > bestMatches {
			bestMatches = matches
			bestIdx = i
		}
	}

	if bestIdx < 0 {
		return entity.UnknownAssignment()
	}

	catalogEntry := constants.SubtypeCatalog[bestIdx]

	// Matching 30% of an entry's keywords is already full confidence.
	confidence := float64(bestMatches) / (float64(len(catalogEntry.Keywords)) * 0.3)
	if confidence > 1.0 {
		confidence = 1.0
	}
	if confidence < minConfidence {
		confidence = minConfidence
	}

	return entity.SubtypeAssignment{
		MainType:   catalogEntry.MainType,
		SubType:    catalogEntry.SubType,
		Confidence: confidence,
	}
}
