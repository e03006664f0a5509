package constants

// Eligibility is the downstream routing decision for one classified
// (main-type, sub-type) pair. Lower priority numbers are more important.
type Eligibility struct {
	RequiresExtraction bool `json:"requires_extraction"`
	Priority           int  `json:"priority"`
}

// defaultEligibility is returned for unknown pairs, including the composite
// sub-type labels produced by the segment merge pass.
var defaultEligibility = Eligibility{RequiresExtraction: false, Priority: 99}

var eligibilityTable = map[MainType]map[SubType]Eligibility{
	MainTypeTurnover: {
		SubtypePLStatement:   {RequiresExtraction: true, Priority: 1},
		SubtypeCACertificate: {RequiresExtraction: true, Priority: 2},
		SubtypeBalanceSheet:  {RequiresExtraction: false, Priority: 3},
		SubtypeAuditorReport: {RequiresExtraction: false, Priority: 4},
		SubtypeIncomeTax:     {RequiresExtraction: false, Priority: 5},
		SubtypeOther:         {RequiresExtraction: false, Priority: 10},
	},
	MainTypeWorkOrder: {
		SubtypePurchaseOrder:   {RequiresExtraction: true, Priority: 1},
		SubtypeCompletionCert:  {RequiresExtraction: true, Priority: 2},
		SubtypeWorkContract:    {RequiresExtraction: true, Priority: 2},
		SubtypeStatementOfWork: {RequiresExtraction: true, Priority: 2},
		SubtypeCACertificate:   {RequiresExtraction: true, Priority: 2},
		SubtypeOther:           {RequiresExtraction: false, Priority: 10},
	},
}

// EligibilityFor looks up the extraction routing for a classified segment.
// Unlisted pairs get the no-extraction default rather than an error: a
// segment we cannot route is still a well-formed segment.
func EligibilityFor(mt MainType, st SubType) Eligibility {
	family, ok := eligibilityTable[mt]
	if !ok {
		return defaultEligibility
	}
	e, ok := family[st]
	if !ok {
		return defaultEligibility
	}
	return e
}
