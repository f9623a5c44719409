package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/parsecsion/north-sussex-judo-calculator/internal/usecase"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func (s *Server) handleError(w http.ResponseWriter, err error) {
	var de *usecase.DomainError
	if errors.As(err, &de) {
		status := httpStatusForCode(de.Code)
		writeDomainError(w, status, de)
		return
	}

	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func httpStatusForCode(code usecase.ErrorCode) int {
	switch code {
	case usecase.ErrorCodeEmptyName,
		usecase.ErrorCodeWeightOutOfRange,
		usecase.ErrorCodeCompetitionCountOutOfRange,
		usecase.ErrorCodeCompetitionNotAllowed,
		usecase.ErrorCodeCoachingHoursOutOfRange:
		return http.StatusBadRequest
	case usecase.ErrorCodeDuplicateName:
		return http.StatusConflict
	case usecase.ErrorCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeDomainError(w http.ResponseWriter, status int, de *usecase.DomainError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := errorResponse{
		Error: errorBody{
			Code:    string(de.Code),
			Message: de.Message,
		},
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "failed to encode error response", http.StatusInternalServerError)
	}
}
