package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/parsecsion/north-sussex-judo-calculator/internal/entity"
	"github.com/parsecsion/north-sussex-judo-calculator/internal/usecase"
)

func (s *Server) handleAthleteRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	defer closeRequestBody(r)

	var req athleteRegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	// неизвестный план — ошибка разбора ввода, а не доменная
	plan, err := entity.ParseTrainingPlan(req.Plan)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	input := usecase.RegisterAthleteInput{
		Name:          req.Name,
		Plan:          plan,
		WeightKg:      req.WeightKg,
		Competitions:  req.Competitions,
		CoachingHours: req.CoachingHours,
	}

	athlete, err := s.athleteService.Register(r.Context(), input)
	if err != nil {
		s.handleError(w, err)
		return
	}

	resp := struct {
		Athlete *AthleteDTO `json:"athlete"`
	}{
		Athlete: athleteToDTO(athlete),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (s *Server) handleAthleteRemove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	defer closeRequestBody(r)

	var req athleteRemoveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	if err := s.athleteService.Remove(r.Context(), req.Name); err != nil {
		s.handleError(w, err)
		return
	}

	resp := struct {
		Removed string `json:"removed"`
	}{
		Removed: req.Name,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (s *Server) handleAthleteList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	athletes, err := s.athleteService.List(r.Context())
	if err != nil {
		s.handleError(w, err)
		return
	}

	dtos := make([]*AthleteDTO, 0, len(athletes))
	for _, a := range athletes {
		dtos = append(dtos, athleteToDTO(a))
	}

	resp := struct {
		Athletes []*AthleteDTO `json:"athletes"`
	}{
		Athletes: dtos,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
