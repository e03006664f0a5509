// Package segmentation partitions a page sequence into contiguous document
// segments, either from the vision layer's start-of-document hints or from
// per-page sub-type continuity.
package segmentation

import "github.com/okonta/docsegmenter/internal/entity"

// DetectBoundaries walks the page sequence in order and closes the open
// segment whenever a succeeded page declares itself a segment start. Failed
// pages never trigger a transition; they stay attached to whichever segment
// is open. The returned ranges partition [1..N].
func DetectBoundaries(records []entity.PageRecord) []entity.PageRange {
	n := len(records)
	if n == 0 {
		return nil
	}

	var boundaries []entity.PageRange
	currentStart := 1

	for i := 2; i <= n; i++ {
		r := &records[i-1]
		if !r.Succeeded || r.Payload == nil {
			continue
		}
		if r.Payload.IsSegmentStart {
			boundaries = append(boundaries, entity.PageRange{Start: currentStart, End: i - 1})
			currentStart = i
		}
	}

	return append(boundaries, entity.PageRange{Start: currentStart, End: n})
}
