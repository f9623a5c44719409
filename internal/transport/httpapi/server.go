// Package httpapi содержит HTTP-хендлеры сервиса расчёта тренировочных взносов
package httpapi

import (
	"net/http"

	"github.com/parsecsion/north-sussex-judo-calculator/internal/usecase"
)

// Server HTTP-адаптер который предоставляет доменные сервисы как JSON-API
type Server struct {
	athleteService usecase.AthleteService
	reportService  usecase.ReportService
}

// NewServer создаёт HTTP-сервер с переданными доменными сервисами
func NewServer(
	athleteSvc usecase.AthleteService,
	reportSvc usecase.ReportService,
) *Server {
	return &Server{
		athleteService: athleteSvc,
		reportService:  reportSvc,
	}
}

// RegisterRoutes регистрирует все HTTP-эндпоинты на переданном ServeMux
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/healthz", s.handleHealth)

	mux.HandleFunc("/athletes/register", s.handleAthleteRegister)
	mux.HandleFunc("/athletes/remove", s.handleAthleteRemove)
	mux.HandleFunc("/athletes/list", s.handleAthleteList)

	mux.HandleFunc("/fees/calculate", s.handleFeeCalculate)
	mux.HandleFunc("/fees/summary", s.handleFeeSummary)

	mux.HandleFunc("/reports/athlete", s.handleAthleteReport)
	mux.HandleFunc("/reports/summary", s.handleSummaryReport)
	mux.HandleFunc("/programs", s.handlePrograms)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
