package subtype

import (
	"testing"

	"github.com/okonta/docsegmenter/constants"
	"github.com/okonta/docsegmenter/internal/entity"
)

func assignments(mainTypes ...constants.MainType) []entity.SubtypeAssignment {
	out := make([]entity.SubtypeAssignment, len(mainTypes))
	for i, mt := range mainTypes {
		out[i] = entity.SubtypeAssignment{MainType: mt}
	}
	return out
}

func TestResolveCrossType(t *testing.T) {
	tests := []struct {
		name      string
		neighbors []entity.SubtypeAssignment
		want      constants.MainType
	}{
		{
			"work order majority",
			assignments(constants.MainTypeWorkOrder, constants.MainTypeWorkOrder, constants.MainTypeTurnover),
			constants.MainTypeWorkOrder,
		},
		{
			"turnover majority",
			assignments(constants.MainTypeTurnover, constants.MainTypeTurnover, constants.MainTypeWorkOrder),
			constants.MainTypeTurnover,
		},
		{
			"exact tie defaults to turnover",
			assignments(constants.MainTypeWorkOrder, constants.MainTypeTurnover),
			constants.MainTypeTurnover,
		},
		{
			"no neighbors defaults to turnover",
			nil,
			constants.MainTypeTurnover,
		},
		{
			"unknown neighbors do not vote",
			assignments(constants.MainTypeUnknown, constants.MainTypeUnknown, constants.MainTypeWorkOrder),
			constants.MainTypeWorkOrder,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveCrossType(tt.neighbors); got != tt.want {
				t.Errorf("ResolveCrossType = %s, want %s", got, tt.want)
			}
		})
	}
}
