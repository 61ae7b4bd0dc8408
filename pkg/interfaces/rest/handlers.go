package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/vsinha/linebalance/pkg/application/dto"
	"github.com/vsinha/linebalance/pkg/application/services/balancing"
	"github.com/vsinha/linebalance/pkg/domain/entities"
	"github.com/vsinha/linebalance/pkg/domain/repositories"
	"github.com/vsinha/linebalance/pkg/infrastructure/repositories/memory"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError answers with the {"detail": ...} shape clients already parse
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Garment Balancer Backend is Ready 🚀",
	})
}

// readSheet pulls the uploaded process sheet out of the multipart form and
// loads it into a fresh in-memory repository for this request
func (s *Server) readSheet(r *http.Request) ([]*entities.Section, repositories.ProcessRepository, error) {
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, nil, fmt.Errorf("file field is required")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read uploaded sheet: %w", err)
	}

	sections, err := s.loader.ParseSections(data)
	if err != nil {
		return nil, nil, err
	}

	repo := memory.NewProcessRepository(len(sections))
	if err := repo.LoadSections(sections); err != nil {
		return nil, nil, err
	}
	return sections, repo, nil
}

// formValue returns the first non-empty value among the given field names
func formValue(r *http.Request, names ...string) string {
	for _, name := range names {
		if value := r.FormValue(name); value != "" {
			return value
		}
	}
	return ""
}

// parseBalanceRequest reads the shared form fields of /balance and /export.
// The legacy frontend sends config_str and selected_sections_str, so both
// spellings are accepted. The error strings are part of the API contract, so
// they keep their original casing.
func parseBalanceRequest(r *http.Request) (balancing.Request, error) {
	basis, err := entities.ParseTimeBasis(r.FormValue("time_mode"))
	if err != nil {
		return balancing.Request{}, err
	}

	counts := make(map[entities.SectionName]int)
	if err := json.Unmarshal([]byte(formValue(r, "config", "config_str")), &counts); err != nil {
		return balancing.Request{}, fmt.Errorf("Invalid configuration format")
	}

	var selected []entities.SectionName
	if raw := formValue(r, "selected_sections", "selected_sections_str"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &selected); err != nil {
			return balancing.Request{}, fmt.Errorf("Invalid selected sections format")
		}
	}

	return balancing.Request{
		OperatorCounts: counts,
		Basis:          basis,
		Selected:       selected,
	}, nil
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	total, err := strconv.Atoi(r.FormValue("total_operators"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "total_operators must be an integer")
		return
	}

	sections, repo, err := s.readSheet(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(sections) == 0 {
		writeError(w, http.StatusBadRequest, "No valid data found in sheet")
		return
	}

	smv, err := s.service.Takt(r.Context(), repo, total, entities.BasisSMV)
	if err != nil {
		s.logger.Error("takt analysis failed", "error", err)
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}
	ct, err := s.service.Takt(r.Context(), repo, total, entities.BasisCT)
	if err != nil {
		s.logger.Error("takt analysis failed", "error", err)
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	writeJSON(w, http.StatusOK, dto.NewTaktReport(smv, ct))
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	req, err := parseBalanceRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	_, repo, err := s.readSheet(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	result, err := s.service.Balance(r.Context(), repo, req)
	if err != nil {
		s.logger.Error("balancing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "balancing failed")
		return
	}

	s.metrics.RecordBalanceRun(req.Basis.String(), time.Since(start).Seconds())
	s.metrics.SetLineBottleneck(result.Bottleneck)
	s.metrics.SetLineBalance(result.LineBalance)
	s.metrics.SetOperators(result.TotalOperators)

	writeJSON(w, http.StatusOK, dto.NewLineReport(result))
}

// handleExport runs a balance and streams back the operator worksheet as CSV
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	req, err := parseBalanceRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sections, repo, err := s.readSheet(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.service.Balance(r.Context(), repo, req)
	if err != nil {
		s.logger.Error("export balancing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	worksheet := dto.BuildWorksheet(sections, result)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+dto.WorksheetFilename(req.Basis))
	if err := worksheet.WriteCSV(w); err != nil {
		s.logger.Error("worksheet write failed", "error", err)
		return
	}
	s.metrics.IncrementExport("csv")
}
