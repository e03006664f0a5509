package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/okonta/docsegmenter/internal/common"
	"github.com/okonta/docsegmenter/internal/entity"
	"github.com/okonta/docsegmenter/internal/ingest"
)

// handleCreateRun ingests a page-record array, runs the full segmentation
// pipeline, persists the result, and returns the run.
func (s *Service) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 32<<20))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("read body: %w", err))
		return
	}

	records, err := ingest.DecodeRecords(body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	run := s.processor.Process(records)

	if err := s.store.SaveRun(r.Context(), run); err != nil {
		s.logger.Error("save run failed", "run_id", run.ID, "error", err)
		s.writeError(w, http.StatusInternalServerError, common.ErrDatabase)
		return
	}

	s.writeJSON(w, http.StatusCreated, run)
}

func (s *Service) handleListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := s.store.ListRuns(r.Context(), 50)
	if err != nil {
		s.logger.Error("list runs failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, common.ErrDatabase)
		return
	}
	s.writeJSON(w, http.StatusOK, runs)
}

func (s *Service) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, ok := s.loadRun(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, run)
}

func (s *Service) handleGetSegments(w http.ResponseWriter, r *http.Request) {
	run, ok := s.loadRun(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, run.Segments)
}

func (s *Service) handleExportRun(w http.ResponseWriter, r *http.Request) {
	run, ok := s.loadRun(w, r)
	if !ok {
		return
	}

	data, err := s.exporter.ExportSegmentsXLSX(run)
	if err != nil {
		s.logger.Error("export failed", "run_id", run.ID, "error", err)
		s.writeError(w, http.StatusInternalServerError, common.ErrInternal)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "segments-"+run.ID.String()+".xlsx"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Service) loadRun(w http.ResponseWriter, r *http.Request) (*entity.Run, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "runID"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("%w: invalid run id", common.ErrInvalidInput))
		return nil, false
	}

	run, err := s.store.GetRun(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, err)
		} else {
			s.logger.Error("load run failed", "run_id", id, "error", err)
			s.writeError(w, http.StatusInternalServerError, common.ErrDatabase)
		}
		return nil, false
	}
	return run, true
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("write response failed", "error", err)
	}
}

func (s *Service) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
