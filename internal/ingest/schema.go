package ingest

// BuildPageRecordsSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map for the vision analyzer's page-record array. Only the fields
// the core consumes are constrained; everything else passes through
// unvalidated so upstream can attach extra data freely.
func BuildPageRecordsSchema() map[string]any {
	payload := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"page_number": map[string]any{"type": "integer", "minimum": 1},
			"page_kind":   map[string]any{"type": "string"},
			"type_hints": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"text_snippets": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"structure_flags": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"has_tables":     map[string]any{"type": "boolean"},
					"has_forms":      map[string]any{"type": "boolean"},
					"has_key_values": map[string]any{"type": "boolean"},
					"data_density":   map[string]any{"type": "string", "enum": []any{"LOW", "MEDIUM", "HIGH"}},
				},
			},
			"vlm_confidence":     map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
			"is_segment_start":   map[string]any{"type": "boolean"},
			"is_segment_end":     map[string]any{"type": "boolean"},
			"continues_previous": map[string]any{"type": "boolean"},
		},
	}

	record := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"page_number": map[string]any{"type": "integer", "minimum": 1},
			"succeeded":   map[string]any{"type": "boolean"},
			"error":       map[string]any{"type": "string"},
			"payload":     payload,
		},
		"required": []string{"page_number", "succeeded"},
	}

	return map[string]any{
		"type":     "array",
		"items":    record,
		"minItems": 1,
	}
}
