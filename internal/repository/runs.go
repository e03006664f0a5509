package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okonta/docsegmenter/constants"
	"github.com/okonta/docsegmenter/internal/common"
	"github.com/okonta/docsegmenter/internal/entity"
)

// SaveRun stores a run with its segments and classifications in one
// transaction.
func (db *DB) SaveRun(ctx context.Context, run *entity.Run) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, page_count, created_at) VALUES (?, ?, ?)`,
		run.ID.String(), run.PageCount, run.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, seg := range run.Segments {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO segments
				(run_id, segment_id, start_page, end_page, main_type, sub_type,
				 confidence, requires_extraction, priority)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID.String(), seg.SegmentID, seg.StartPage, seg.EndPage,
			string(seg.MainType), string(seg.SubType),
			seg.Confidence, boolToInt(seg.RequiresExtraction), seg.Priority,
		)
		if err != nil {
			return fmt.Errorf("insert segment %d: %w", seg.SegmentID, err)
		}
	}

	for _, cls := range run.Classifications {
		scores, err := json.Marshal(cls.Scores)
		if err != nil {
			return fmt.Errorf("marshal scores: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO classifications
				(run_id, segment_id, document_type, confidence, reasoning, scores_json)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID.String(), cls.SegmentID, string(cls.DocumentType),
			cls.Confidence, cls.Reasoning, string(scores),
		)
		if err != nil {
			return fmt.Errorf("insert classification %d: %w", cls.SegmentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// GetRun loads a run with its segments and classifications. Returns
// common.ErrNotFound for unknown IDs.
func (db *DB) GetRun(ctx context.Context, id uuid.UUID) (*entity.Run, error) {
	run := &entity.Run{ID: id}

	var createdAt string
	err := db.QueryRowContext(ctx,
		`SELECT page_count, created_at FROM runs WHERE id = ?`, id.String(),
	).Scan(&run.PageCount, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query run: %w", err)
	}
	if run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	if run.Segments, err = db.listSegments(ctx, id); err != nil {
		return nil, err
	}
	if run.Classifications, err = db.listClassifications(ctx, id); err != nil {
		return nil, err
	}
	return run, nil
}

func (db *DB) listSegments(ctx context.Context, runID uuid.UUID) ([]entity.Segment, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT segment_id, start_page, end_page, main_type, sub_type,
		        confidence, requires_extraction, priority
		 FROM segments WHERE run_id = ? ORDER BY segment_id`, runID.String())
	if err != nil {
		return nil, fmt.Errorf("query segments: %w", err)
	}
	defer rows.Close()

	var segments []entity.Segment
	for rows.Next() {
		var seg entity.Segment
		var mainType, subType string
		var requiresExtraction int
		err := rows.Scan(&seg.SegmentID, &seg.StartPage, &seg.EndPage,
			&mainType, &subType, &seg.Confidence, &requiresExtraction, &seg.Priority)
		if err != nil {
			return nil, fmt.Errorf("scan segment: %w", err)
		}
		seg.MainType = constants.MainType(mainType)
		seg.SubType = constants.SubType(subType)
		seg.RequiresExtraction = requiresExtraction != 0
		for p := seg.StartPage; p <= seg.EndPage; p++ {
			seg.Pages = append(seg.Pages, p)
		}
		segments = append(segments, seg)
	}
	return segments, rows.Err()
}

func (db *DB) listClassifications(ctx context.Context, runID uuid.UUID) ([]entity.ClassificationResult, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT segment_id, document_type, confidence, reasoning, scores_json
		 FROM classifications WHERE run_id = ? ORDER BY segment_id`, runID.String())
	if err != nil {
		return nil, fmt.Errorf("query classifications: %w", err)
	}
	defer rows.Close()

	var results []entity.ClassificationResult
	for rows.Next() {
		var cls entity.ClassificationResult
		var docType, scoresJSON string
		err := rows.Scan(&cls.SegmentID, &docType, &cls.Confidence, &cls.Reasoning, &scoresJSON)
		if err != nil {
			return nil, fmt.Errorf("scan classification: %w", err)
		}
		cls.DocumentType = constants.MainType(docType)
		if err := json.Unmarshal([]byte(scoresJSON), &cls.Scores); err != nil {
			return nil, fmt.Errorf("unmarshal scores: %w", err)
		}
		results = append(results, cls)
	}
	return results, rows.Err()
}

// ListRuns returns run IDs and page counts, most recent first.
func (db *DB) ListRuns(ctx context.Context, limit int) ([]entity.Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.QueryContext(ctx,
		`SELECT id, page_count, created_at FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []entity.Run
	for rows.Next() {
		var run entity.Run
		var id, createdAt string
		if err := rows.Scan(&id, &run.PageCount, &createdAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if run.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse run id: %w", err)
		}
		if run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
