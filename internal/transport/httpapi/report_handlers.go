package httpapi

import "net/http"

func (s *Server) handleAthleteReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "name query parameter is required", http.StatusBadRequest)
		return
	}

	report, err := s.reportService.AthleteReport(r.Context(), name)
	if err != nil {
		s.handleError(w, err)
		return
	}
	writeText(w, report)
}

func (s *Server) handleSummaryReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	report, err := s.reportService.SummaryReport(r.Context())
	if err != nil {
		s.handleError(w, err)
		return
	}
	writeText(w, report)
}

func (s *Server) handlePrograms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeText(w, s.reportService.ProgramInfo())
}
