package subtype

import (
	"github.com/okonta/docsegmenter/constants"
	"github.com/okonta/docsegmenter/internal/entity"
)

// ResolveCrossType disambiguates a sub-type that occurs in both main-type
// families (a CA certificate can certify either financials or work) by
// majority vote over the neighbouring pages' assignments within the same
// boundary. An exact tie defaults to TURNOVER.
func ResolveCrossType(neighbors []entity.SubtypeAssignment) constants.MainType {
	var turnover, workOrder int
	for _, n := range neighbors {
		switch n.MainType {
		case constants.MainTypeTurnover:
			turnover++
		case constants.MainTypeWorkOrder:
			workOrder++
		}
	}

	if workOrder > turnover {
		return constants.MainTypeWorkOrder
	}
	return constants.MainTypeTurnover
}
