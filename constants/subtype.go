package constants

// SubType is the specific document kind within a main-type family.
type SubType string

const (
	// Turnover family.
	SubtypePLStatement   SubType = "P&L Statement"
	SubtypeCACertificate SubType = "CA Certificate"
	SubtypeBalanceSheet  SubType = "Balance Sheet"
	SubtypeAuditorReport SubType = "Auditor's Report"
	SubtypeIncomeTax     SubType = "Income Tax Related"

	// Work-order family.
	SubtypePurchaseOrder   SubType = "Purchase Order"
	SubtypeCompletionCert  SubType = "Completion Certificate"
	SubtypeWorkContract    SubType = "Work Contract"
	SubtypeStatementOfWork SubType = "Statement of Work"

	// Catch-alls.
	SubtypeOther   SubType = "Other"
	SubtypeUnknown SubType = "Unknown"
)

// CatalogEntry binds one sub-type to its main-type family and the keyword
// phrases that identify it. Keywords are stored lowercase; matching is a
// case-insensitive substring test against the page text.
type CatalogEntry struct {
	SubType  SubType
	MainType MainType
	Keywords []string
}

// SubtypeCatalog is scanned in declaration order. On equal match counts the
// earlier entry wins, so the order below is load-bearing and must not be
// rearranged.
var SubtypeCatalog = []CatalogEntry{
	{
		SubType:  SubtypePLStatement,
		MainType: MainTypeTurnover,
		Keywords: []string{
			"profit and loss", "p&l", "statement of profit and loss",
			"income statement", "revenue from operations", "expenses",
			"profit for the year", "loss for the year", "total revenue",
			"operating profit", "net profit", "ebitda",
		},
	},
	{
		SubType:  SubtypeBalanceSheet,
		MainType: MainTypeTurnover,
		Keywords: []string{
			"balance sheet", "financial position", "assets", "liabilities",
			"equity and liabilities", "shareholders funds", "share capital",
			"reserves and surplus", "current assets", "non-current assets",
			"property plant and equipment",
		},
	},
	{
		SubType:  SubtypeCACertificate,
		MainType: MainTypeTurnover,
		Keywords: []string{
			"chartered accountant", "ca certificate", "certification",
			"certified that", "examined", "audit", "icai", "membership number",
			"firm registration number", "udin",
		},
	},
	{
		SubType:  SubtypeAuditorReport,
		MainType: MainTypeTurnover,
		Keywords: []string{
			"auditor's report", "independent auditor", "audit opinion",
			"audited financial statements", "basis for opinion",
			"key audit matters", "material uncertainty", "emphasis of matter",
		},
	},
	{
		SubType:  SubtypeIncomeTax,
		MainType: MainTypeTurnover,
		Keywords: []string{
			"income tax", "form 16", "form 16a", "tds certificate",
			"tax deducted at source", "tds", "income tax return", "itr",
			"tax computation", "advance tax", "assessment year", "pan",
		},
	},
	{
		SubType:  SubtypePurchaseOrder,
		MainType: MainTypeWorkOrder,
		Keywords: []string{
			"purchase order", "po#", "order no", "order number",
			"vendor", "supplier", "buyer", "delivery address",
			"items", "quantity", "rate", "amount", "grand total",
			"gstin", "gst", "invoice",
		},
	},
	{
		SubType:  SubtypeCompletionCert,
		MainType: MainTypeWorkOrder,
		Keywords: []string{
			"completion certificate", "work completion", "certificate of completion",
			"completed work", "satisfactory completion", "work done",
			"issued to", "certified that the work",
		},
	},
	{
		SubType:  SubtypeWorkContract,
		MainType: MainTypeWorkOrder,
		Keywords: []string{
			"contract", "agreement", "contract agreement", "party of the first part",
			"party of the second part", "contractor", "contractee",
			"terms and conditions", "scope of work", "contract value",
			"contract period", "penalty clause",
		},
	},
	{
		SubType:  SubtypeStatementOfWork,
		MainType: MainTypeWorkOrder,
		Keywords: []string{
			"statement of work", "sow", "scope of work", "work breakdown",
			"deliverables", "milestones", "project scope", "work description",
			"tasks", "activities", "work items",
		},
	},
	{
		SubType:  SubtypeCACertificate,
		MainType: MainTypeWorkOrder,
		Keywords: []string{
			"chartered accountant", "ca certificate", "certification",
			"certified that", "examined", "work order", "turnover certificate",
		},
	},
}

// IsCrossFamily reports whether a sub-type legitimately occurs in both
// main-type families and therefore needs neighbour-context disambiguation.
func IsCrossFamily(st SubType) bool {
	return st == SubtypeCACertificate
}

// Keywords that signal each main type at segment-classification time.
// These are substring phrases, lowercase, and order-insensitive: the
// classifier counts distinct phrases found, not occurrences.
var (
	WorkOrderKeywords = []string{
		"work order", "purchase order", "po#", "wo#", "order no",
		"invoice", "delivery address", "vendor", "supplier",
		"gstin", "gst", "items", "quantity", "rate", "amount",
		"completion certificate", "job order",
	}

	TurnoverKeywords = []string{
		"turnover", "revenue", "profit and loss", "p&l", "income statement",
		"balance sheet", "financial statement", "shareholders",
		"revenue from operations", "total revenue", "total income",
		"expenses", "profit", "loss", "fiscal year", "fy",
	}
)
