package httpapi

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleFeeCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "name query parameter is required", http.StatusBadRequest)
		return
	}

	fees, err := s.athleteService.CalculateFee(r.Context(), name)
	if err != nil {
		s.handleError(w, err)
		return
	}

	resp := struct {
		Fee FeeBreakdownDTO `json:"fee"`
	}{
		Fee: feeBreakdownToDTO(*fees),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (s *Server) handleFeeSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	summary, err := s.athleteService.CalculateAllFees(r.Context())
	if err != nil {
		s.handleError(w, err)
		return
	}

	resp := struct {
		Summary *SummaryDTO `json:"summary"`
	}{
		Summary: summaryToDTO(summary),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
