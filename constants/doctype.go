package constants

import "strings"

// MainType is the coarse document category assigned to a segment.
type MainType string

const (
	MainTypeWorkOrder MainType = "WORK_ORDER"
	MainTypeTurnover  MainType = "TURNOVER"
	MainTypeUnknown   MainType = "UNKNOWN"
)

var allMainTypes = []MainType{
	MainTypeWorkOrder,
	MainTypeTurnover,
	MainTypeUnknown,
}

// ParseMainType canonicalizes a main-type tag coming from the vision layer.
// Anything unrecognized maps to UNKNOWN.
func ParseMainType(input string) (MainType, bool) {
	normalized := MainType(strings.ToUpper(strings.TrimSpace(input)))
	for _, mt := range allMainTypes {
		if mt == normalized {
			return mt, true
		}
	}
	return MainTypeUnknown, false
}

// PageKind is the structural role the vision classifier assigned to a page.
type PageKind string

const (
	PageKindTitle        PageKind = "TITLE_PAGE"
	PageKindData         PageKind = "DATA_PAGE"
	PageKindSeparator    PageKind = "SEPARATOR"
	PageKindTOC          PageKind = "TOC"
	PageKindContinuation PageKind = "CONTINUATION"
	PageKindEnd          PageKind = "END_PAGE"
	PageKindMagazine     PageKind = "MAGAZINE_LAYOUT"
	PageKindCertificate  PageKind = "CERTIFICATE"
)

var allPageKinds = []PageKind{
	PageKindTitle,
	PageKindData,
	PageKindSeparator,
	PageKindTOC,
	PageKindContinuation,
	PageKindEnd,
	PageKindMagazine,
	PageKindCertificate,
}

// ParsePageKind canonicalizes a page-kind tag. Unrecognized tags fall back
// to DATA_PAGE so that a sloppy upstream label never drops a page.
func ParsePageKind(input string) (PageKind, bool) {
	normalized := PageKind(strings.ToUpper(strings.TrimSpace(input)))
	for _, pk := range allPageKinds {
		if pk == normalized {
			return pk, true
		}
	}
	return PageKindData, false
}

// DataDensity grades how much extractable data a page carries.
type DataDensity string

const (
	DensityLow    DataDensity = "LOW"
	DensityMedium DataDensity = "MEDIUM"
	DensityHigh   DataDensity = "HIGH"
)
