package segmentation

import (
	"reflect"
	"testing"

	"github.com/okonta/docsegmenter/constants"
	"github.com/okonta/docsegmenter/internal/entity"
)

func annotated(assignments ...entity.SubtypeAssignment) []entity.PageRecord {
	records := make([]entity.PageRecord, len(assignments))
	for i := range assignments {
		a := assignments[i]
		records[i] = entity.PageRecord{
			PageNumber: i + 1,
			Succeeded:  true,
			Payload:    &entity.PagePayload{PageNumber: i + 1},
			Subtype:    &a,
		}
	}
	return records
}

func assignment(mt constants.MainType, st constants.SubType, conf float64) entity.SubtypeAssignment {
	return entity.SubtypeAssignment{MainType: mt, SubType: st, Confidence: conf}
}

func TestBuildGroupsBySubtype(t *testing.T) {
	builder := NewBuilder(nil, BuilderConfig{})
	records := annotated(
		assignment(constants.MainTypeTurnover, constants.SubtypePLStatement, 0.9),
		assignment(constants.MainTypeTurnover, constants.SubtypePLStatement, 0.9),
		assignment(constants.MainTypeTurnover, constants.SubtypeBalanceSheet, 0.8),
		assignment(constants.MainTypeWorkOrder, constants.SubtypePurchaseOrder, 0.9),
		assignment(constants.MainTypeWorkOrder, constants.SubtypePurchaseOrder, 0.9),
	)

	segments := builder.Build(records)
	if len(segments) != 3 {
		t.Fatalf("got %d segments, want 3", len(segments))
	}

	wantRanges := [][2]int{{1, 2}, {3, 3}, {4, 5}}
	for i, seg := range segments {
		if seg.SegmentID != i+1 {
			t.Errorf("segment %d: id = %d, want %d", i, seg.SegmentID, i+1)
		}
		if seg.StartPage != wantRanges[i][0] || seg.EndPage != wantRanges[i][1] {
			t.Errorf("segment %d: range %d-%d, want %d-%d",
				i, seg.StartPage, seg.EndPage, wantRanges[i][0], wantRanges[i][1])
		}
	}
	if segments[1].SubType != constants.SubtypeBalanceSheet {
		t.Errorf("segment 2 sub type = %s, want Balance Sheet", segments[1].SubType)
	}
}

func TestBuildIncrementalAverageConfidence(t *testing.T) {
	// The running confidence halves the weight of earlier pages each step:
	// (1.0+0.5)/2 = 0.75, then (0.75+0.75)/2 = 0.75. Not a true mean.
	builder := NewBuilder(nil, BuilderConfig{})
	records := annotated(
		assignment(constants.MainTypeTurnover, constants.SubtypePLStatement, 1.0),
		assignment(constants.MainTypeTurnover, constants.SubtypePLStatement, 0.5),
		assignment(constants.MainTypeTurnover, constants.SubtypePLStatement, 0.75),
	)

	segments := builder.Build(records)
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}
	if segments[0].Confidence != 0.75 {
		t.Errorf("confidence = %f, want 0.75", segments[0].Confidence)
	}
}

func TestBuildMergesWeakSingleton(t *testing.T) {
	builder := NewBuilder(nil, BuilderConfig{MergeLowConfidence: true})
	records := annotated(
		assignment(constants.MainTypeTurnover, constants.SubtypePLStatement, 0.9),
		assignment(constants.MainTypeTurnover, constants.SubtypePLStatement, 0.9),
		assignment(constants.MainTypeTurnover, constants.SubtypeBalanceSheet, 0.4),
		assignment(constants.MainTypeWorkOrder, constants.SubtypePurchaseOrder, 0.9),
	)

	segments := builder.Build(records)
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2: %+v", len(segments), segments)
	}

	merged := segments[0]
	if merged.SubType != "P&L Statement + Balance Sheet" {
		t.Errorf("merged sub type = %q, want %q", merged.SubType, "P&L Statement + Balance Sheet")
	}
	if merged.StartPage != 1 || merged.EndPage != 3 {
		t.Errorf("merged range = %d-%d, want 1-3", merged.StartPage, merged.EndPage)
	}
	if !reflect.DeepEqual(merged.Pages, []int{1, 2, 3}) {
		t.Errorf("merged pages = %v, want [1 2 3]", merged.Pages)
	}
	// Confidence of the absorbing segment is not recomputed by the merge.
	if merged.Confidence != 0.9 {
		t.Errorf("merged confidence = %f, want 0.9", merged.Confidence)
	}
}

func TestBuildMergeRequiresSameMainType(t *testing.T) {
	builder := NewBuilder(nil, BuilderConfig{MergeLowConfidence: true})
	records := annotated(
		assignment(constants.MainTypeTurnover, constants.SubtypePLStatement, 0.9),
		assignment(constants.MainTypeWorkOrder, constants.SubtypePurchaseOrder, 0.4),
	)

	segments := builder.Build(records)
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2 (no cross-family merge)", len(segments))
	}
}

func TestBuildFirstSegmentNeverMerges(t *testing.T) {
	builder := NewBuilder(nil, BuilderConfig{MergeLowConfidence: true})
	records := annotated(
		assignment(constants.MainTypeTurnover, constants.SubtypeBalanceSheet, 0.2),
		assignment(constants.MainTypeTurnover, constants.SubtypePLStatement, 0.9),
	)

	segments := builder.Build(records)
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}
	if segments[0].SubType != constants.SubtypeBalanceSheet {
		t.Errorf("first segment sub type = %s, want Balance Sheet", segments[0].SubType)
	}
}

func TestBuildMergedSegmentNotRemergedForward(t *testing.T) {
	// Segment 2 merges backward into segment 1. Segment 3 differs in main
	// type, so the combined segment must stay as-is; the pass never
	// revisits it.
	builder := NewBuilder(nil, BuilderConfig{MergeLowConfidence: true})
	records := annotated(
		assignment(constants.MainTypeWorkOrder, constants.SubtypePurchaseOrder, 0.9),
		assignment(constants.MainTypeWorkOrder, constants.SubtypeStatementOfWork, 0.4),
		assignment(constants.MainTypeTurnover, constants.SubtypePLStatement, 0.9),
	)

	segments := builder.Build(records)
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}
	if segments[0].SubType != "Purchase Order + Statement of Work" {
		t.Errorf("segment 1 sub type = %q", segments[0].SubType)
	}
	if segments[1].SubType != constants.SubtypePLStatement {
		t.Errorf("segment 2 sub type = %q", segments[1].SubType)
	}
}

func TestBuildChainAbsorbsConsecutiveWeakSingletons(t *testing.T) {
	// Two weak singletons in a row both fold into the same leading segment;
	// the label accretes left to right.
	builder := NewBuilder(nil, BuilderConfig{MergeLowConfidence: true})
	records := annotated(
		assignment(constants.MainTypeWorkOrder, constants.SubtypePurchaseOrder, 0.9),
		assignment(constants.MainTypeWorkOrder, constants.SubtypeStatementOfWork, 0.4),
		assignment(constants.MainTypeWorkOrder, constants.SubtypeWorkContract, 0.3),
	)

	segments := builder.Build(records)
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}
	want := "Purchase Order + Statement of Work + Work Contract"
	if string(segments[0].SubType) != want {
		t.Errorf("sub type = %q, want %q", segments[0].SubType, want)
	}
}

func TestBuildMergeDisabled(t *testing.T) {
	builder := NewBuilder(nil, BuilderConfig{MergeLowConfidence: false})
	records := annotated(
		assignment(constants.MainTypeTurnover, constants.SubtypePLStatement, 0.9),
		assignment(constants.MainTypeTurnover, constants.SubtypeBalanceSheet, 0.1),
	)
	if segments := builder.Build(records); len(segments) != 2 {
		t.Fatalf("got %d segments, want 2 with merging disabled", len(segments))
	}
}

func TestBuildUnannotatedPagesKeepPartition(t *testing.T) {
	records := annotated(
		assignment(constants.MainTypeTurnover, constants.SubtypePLStatement, 0.9),
		assignment(constants.MainTypeTurnover, constants.SubtypePLStatement, 0.9),
		assignment(constants.MainTypeTurnover, constants.SubtypePLStatement, 0.9),
	)
	// Middle page failed analysis and was never annotated.
	records[1].Succeeded = false
	records[1].Payload = nil
	records[1].Subtype = nil

	builder := NewBuilder(nil, BuilderConfig{MergeLowConfidence: true})
	segments := builder.Build(records)

	next := 1
	for _, seg := range segments {
		if seg.StartPage != next {
			t.Fatalf("segment %d starts at %d, want %d", seg.SegmentID, seg.StartPage, next)
		}
		for i, p := range seg.Pages {
			if p != seg.StartPage+i {
				t.Fatalf("segment %d pages %v are not contiguous", seg.SegmentID, seg.Pages)
			}
		}
		next = seg.EndPage + 1
	}
	if next != len(records)+1 {
		t.Fatalf("partition covers up to %d, want %d", next-1, len(records))
	}
}
