// Package export renders a run's segments as an XLSX report for manual
// inspection and downstream hand-off.
package export

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/okonta/docsegmenter/internal/entity"
)

// Service produces XLSX bytes for segment reports.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ExportSegmentsXLSX returns an XLSX workbook (as bytes) with one row per
// segment of the run, plus the classifier's verdict where available.
func (s *Service) ExportSegmentsXLSX(run *entity.Run) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Segments"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// Drop the default sheet so the workbook opens on Segments.
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Segment",
		"Pages",
		"Main Type",
		"Sub Type",
		"Confidence",
		"Requires Extraction",
		"Priority",
		"Classifier Verdict",
		"Classifier Confidence",
		"Reasoning",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	verdicts := make(map[int]entity.ClassificationResult, len(run.Classifications))
	for _, cls := range run.Classifications {
		verdicts[cls.SegmentID] = cls
	}

	row := 2
	for _, seg := range run.Segments {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, seg.SegmentID)
		write(2, fmt.Sprintf("%d-%d", seg.StartPage, seg.EndPage))
		write(3, string(seg.MainType))
		write(4, string(seg.SubType))
		write(5, fmt.Sprintf("%.2f", seg.Confidence))
		write(6, seg.RequiresExtraction)
		write(7, seg.Priority)

		if cls, ok := verdicts[seg.SegmentID]; ok {
			write(8, string(cls.DocumentType))
			write(9, fmt.Sprintf("%.2f", cls.Confidence))
			write(10, cls.Reasoning)
		}

		row++
	}

	_ = f.SetColWidth(sheet, "B", "B", 12)
	_ = f.SetColWidth(sheet, "C", "D", 24)
	_ = f.SetColWidth(sheet, "J", "J", 60)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Debug("segments exported", "run_id", run.ID, "rows", row-2)
	return buf.Bytes(), nil
}
