// Package pages normalizes access to per-page analysis payloads. Records
// may arrive out of order or with inconsistent numbering, so lookups go
// through a fixed precedence of matching strategies rather than trusting
// any single field.
package pages

import "github.com/okonta/docsegmenter/internal/entity"

// Lookup resolves the analysis payload for a 1-indexed page number.
//
// Precedence, first match wins:
//  1. a record whose declared page number matches and which succeeded;
//  2. the record at position pageNum-1, if it succeeded;
//  3. a succeeded record whose payload embeds the requested page number.
//
// Absence is a normal outcome, not an error: callers treat a false return
// as "no data for this page".
func Lookup(records []entity.PageRecord, pageNum int) (*entity.PagePayload, bool) {
	for i := range records {
		r := &records[i]
		if r.PageNumber == pageNum && r.Succeeded && r.Payload != nil {
			return r.Payload, true
		}
	}

	if idx := pageNum - 1; idx >= 0 && idx < len(records) {
		r := &records[idx]
		if r.Succeeded && r.Payload != nil {
			return r.Payload, true
		}
	}

	for i := range records {
		r := &records[i]
		if r.Succeeded && r.Payload != nil && r.Payload.PageNumber == pageNum {
			return r.Payload, true
		}
	}

	return nil, false
}
