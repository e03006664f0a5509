package entity

import "github.com/okonta/docsegmenter/constants"

// StructureFlags summarizes what kind of extractable structure the vision
// classifier saw on a page. Absent flags default to false/empty.
type StructureFlags struct {
	HasTables    bool                  `json:"has_tables"`
	HasForms     bool                  `json:"has_forms"`
	HasKeyValues bool                  `json:"has_key_values"`
	DataDensity  constants.DataDensity `json:"data_density,omitempty"`
}

// Identifiers carries free-form labels the vision layer extracted from a
// page. The core never interprets these; they pass through to downstream
// consumers untouched.
type Identifiers struct {
	DocumentID    string `json:"document_id,omitempty"`
	DocumentTitle string `json:"document_title,omitempty"`
	Date          string `json:"date,omitempty"`
	PageIndicator string `json:"page_indicator,omitempty"`
	CompanyName   string `json:"company_name,omitempty"`
}

// PagePayload is the analysis the vision classifier produced for one page.
type PagePayload struct {
	PageNumber        int                  `json:"page_number,omitempty"`
	PageKind          constants.PageKind   `json:"page_kind,omitempty"`
	TypeHints         []constants.MainType `json:"type_hints,omitempty"`
	TextSnippets      []string             `json:"text_snippets,omitempty"`
	Structure         StructureFlags       `json:"structure_flags"`
	VLMConfidence     float64              `json:"vlm_confidence"`
	IsSegmentStart    bool                 `json:"is_segment_start"`
	IsSegmentEnd      bool                 `json:"is_segment_end"`
	ContinuesPrevious bool                 `json:"continues_previous"`
	Identifiers       Identifiers          `json:"identifiers"`
	Notes             string               `json:"notes,omitempty"`
}

// HintsType reports whether the vision layer tagged this page with the
// given main type.
func (p *PagePayload) HintsType(mt constants.MainType) bool {
	for _, h := range p.TypeHints {
		if h == mt {
			return true
		}
	}
	return false
}

// PageRecord is one page's analysis outcome as delivered by the vision
// collaborator. A failed analysis carries no payload; the core treats it as
// absent data, never as a fault.
type PageRecord struct {
	PageNumber int          `json:"page_number"`
	Succeeded  bool         `json:"succeeded"`
	Error      string       `json:"error,omitempty"`
	Payload    *PagePayload `json:"payload,omitempty"`

	// Subtype is attached by the annotation pass. The cross-family
	// resolution pass may revise its main type before segments are built;
	// after that it is never touched.
	Subtype *SubtypeAssignment `json:"subtype,omitempty"`
}

// SubtypeAssignment is the per-page result of keyword sub-type detection.
type SubtypeAssignment struct {
	MainType   constants.MainType `json:"main_type"`
	SubType    constants.SubType  `json:"sub_type"`
	Confidence float64            `json:"confidence"`
}

// UnknownAssignment is the assignment for pages with no usable text or no
// successful analysis.
func UnknownAssignment() SubtypeAssignment {
	return SubtypeAssignment{
		MainType:   constants.MainTypeUnknown,
		SubType:    constants.SubtypeUnknown,
		Confidence: 0.0,
	}
}
