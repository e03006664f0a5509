// Package ingest validates and decodes page-record payloads arriving from
// the vision page analyzer.
package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/okonta/docsegmenter/constants"
	"github.com/okonta/docsegmenter/internal/common"
	"github.com/okonta/docsegmenter/internal/entity"
)

// DecodeRecords validates raw JSON against the page-records schema and
// decodes it into page records with canonicalized enum tags. Unrecognized
// type hints are dropped; unrecognized page kinds fall back to DATA_PAGE.
func DecodeRecords(data []byte) ([]entity.PageRecord, error) {
	if err := validateAgainstSchema(BuildPageRecordsSchema(), data); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	var records []entity.PageRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode page records: %w", err)
	}

	for i := range records {
		r := &records[i]
		if r.Payload == nil {
			continue
		}

		if kind, ok := constants.ParsePageKind(string(r.Payload.PageKind)); ok {
			r.Payload.PageKind = kind
		} else {
			r.Payload.PageKind = constants.PageKindData
		}

		hints := r.Payload.TypeHints[:0]
		for _, h := range r.Payload.TypeHints {
			if mt, ok := constants.ParseMainType(string(h)); ok && mt != constants.MainTypeUnknown {
				hints = append(hints, mt)
			}
		}
		r.Payload.TypeHints = hints
	}

	return records, nil
}

// validateAgainstSchema validates data against schemaMap.
func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
