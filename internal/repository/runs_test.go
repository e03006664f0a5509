package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/okonta/docsegmenter/constants"
	"github.com/okonta/docsegmenter/internal/common"
	"github.com/okonta/docsegmenter/internal/entity"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpenReportsPath(t *testing.T) {
	db := setupTestDB(t)
	if db.Path() != ":memory:" {
		t.Errorf("path = %q, want :memory:", db.Path())
	}
}

func sampleRun() *entity.Run {
	return &entity.Run{
		ID:        uuid.New(),
		PageCount: 5,
		CreatedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Segments: []entity.Segment{
			{
				SegmentID: 1, StartPage: 1, EndPage: 3, Pages: []int{1, 2, 3},
				MainType: constants.MainTypeWorkOrder, SubType: constants.SubtypePurchaseOrder,
				Confidence: 0.91, RequiresExtraction: true, Priority: 1,
			},
			{
				SegmentID: 2, StartPage: 4, EndPage: 5, Pages: []int{4, 5},
				MainType: constants.MainTypeTurnover, SubType: "P&L Statement + Balance Sheet",
				Confidence: 0.55, RequiresExtraction: false, Priority: 99,
			},
		},
		Classifications: []entity.ClassificationResult{
			{
				SegmentID: 1, DocumentType: constants.MainTypeWorkOrder,
				Confidence: 0.7, Reasoning: "found 3 hint(s) for WORK_ORDER",
				Scores: map[constants.MainType]float64{
					constants.MainTypeWorkOrder: 70,
					constants.MainTypeTurnover:  0,
				},
			},
			{
				SegmentID: 2, DocumentType: constants.MainTypeTurnover,
				Confidence: 0.55, Reasoning: "2 keyword matches",
				Scores: map[constants.MainType]float64{
					constants.MainTypeWorkOrder: 10,
					constants.MainTypeTurnover:  55,
				},
			},
		},
	}
}

func TestSaveAndGetRun(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	run := sampleRun()

	if err := db.SaveRun(ctx, run); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	got, err := db.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}

	if got.PageCount != run.PageCount {
		t.Errorf("page count = %d, want %d", got.PageCount, run.PageCount)
	}
	if !got.CreatedAt.Equal(run.CreatedAt) {
		t.Errorf("created at = %v, want %v", got.CreatedAt, run.CreatedAt)
	}
	if !reflect.DeepEqual(got.Segments, run.Segments) {
		t.Errorf("segments:\n got %+v\nwant %+v", got.Segments, run.Segments)
	}

	if len(got.Classifications) != 2 {
		t.Fatalf("got %d classifications, want 2", len(got.Classifications))
	}
	for i, cls := range got.Classifications {
		want := run.Classifications[i]
		if cls.SegmentID != want.SegmentID || cls.DocumentType != want.DocumentType ||
			cls.Confidence != want.Confidence || cls.Reasoning != want.Reasoning {
			t.Errorf("classification %d = %+v, want %+v", i, cls, want)
		}
		if !reflect.DeepEqual(cls.Scores, want.Scores) {
			t.Errorf("classification %d scores = %v, want %v", i, cls.Scores, want.Scores)
		}
	}
}

func TestGetRunNotFound(t *testing.T) {
	db := setupTestDB(t)
	_, err := db.GetRun(context.Background(), uuid.New())
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestSaveRunDuplicateID(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	run := sampleRun()

	if err := db.SaveRun(ctx, run); err != nil {
		t.Fatalf("first SaveRun: %v", err)
	}
	if err := db.SaveRun(ctx, run); err == nil {
		t.Error("second SaveRun with same id should fail")
	}
}

func TestListRuns(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	first := sampleRun()
	second := sampleRun()
	second.ID = uuid.New()
	second.CreatedAt = first.CreatedAt.Add(time.Hour)

	if err := db.SaveRun(ctx, first); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if err := db.SaveRun(ctx, second); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	runs, err := db.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].ID != second.ID {
		t.Errorf("most recent run first: got %s, want %s", runs[0].ID, second.ID)
	}
}
