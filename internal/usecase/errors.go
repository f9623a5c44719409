// Package usecase содержит доменные ошибки
package usecase

// ErrorCode - доменный код ошибки
type ErrorCode string

const (
	// ErrorCodeEmptyName возвращается когда имя спортсмена пустое
	ErrorCodeEmptyName ErrorCode = "EMPTY_NAME"
	// ErrorCodeDuplicateName возвращается когда спортсмен с таким именем уже зарегистрирован
	ErrorCodeDuplicateName ErrorCode = "DUPLICATE_NAME"
	// ErrorCodeWeightOutOfRange возвращается когда вес вне допустимого диапазона
	ErrorCodeWeightOutOfRange ErrorCode = "WEIGHT_OUT_OF_RANGE"
	// ErrorCodeCompetitionCountOutOfRange возвращается когда число соревнований вне диапазона
	ErrorCodeCompetitionCountOutOfRange ErrorCode = "COMPETITION_COUNT_OUT_OF_RANGE"
	// ErrorCodeCompetitionNotAllowed возвращается когда план не допускает соревнований
	ErrorCodeCompetitionNotAllowed ErrorCode = "COMPETITION_NOT_ALLOWED"
	// ErrorCodeCoachingHoursOutOfRange возвращается когда часы тренировок вне диапазона
	ErrorCodeCoachingHoursOutOfRange ErrorCode = "COACHING_HOURS_OUT_OF_RANGE"
	// ErrorCodeNotFound возвращается когда спортсмен не найден
	ErrorCodeNotFound ErrorCode = "NOT_FOUND"
)

// DomainError представляет доменную ошибку с кодом и сообщением
type DomainError struct {
	Code    ErrorCode
	Message string
}

// Error реализует интерфейс error
func (e *DomainError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// NewEmptyNameError создаёт ошибку с кодом ErrorCodeEmptyName
func NewEmptyNameError(msg string) *DomainError {
	return &DomainError{
		Code:    ErrorCodeEmptyName,
		Message: msg,
	}
}

// NewDuplicateNameError создаёт ошибку с кодом ErrorCodeDuplicateName
func NewDuplicateNameError(msg string) *DomainError {
	return &DomainError{
		Code:    ErrorCodeDuplicateName,
		Message: msg,
	}
}

// NewWeightOutOfRangeError создаёт ошибку с кодом ErrorCodeWeightOutOfRange
func NewWeightOutOfRangeError(msg string) *DomainError {
	return &DomainError{
		Code:    ErrorCodeWeightOutOfRange,
		Message: msg,
	}
}

// NewCompetitionCountOutOfRangeError создаёт ошибку с кодом ErrorCodeCompetitionCountOutOfRange
func NewCompetitionCountOutOfRangeError(msg string) *DomainError {
	return &DomainError{
		Code:    ErrorCodeCompetitionCountOutOfRange,
		Message: msg,
	}
}

// NewCompetitionNotAllowedError создаёт ошибку с кодом ErrorCodeCompetitionNotAllowed
func NewCompetitionNotAllowedError(msg string) *DomainError {
	return &DomainError{
		Code:    ErrorCodeCompetitionNotAllowed,
		Message: msg,
	}
}

// NewCoachingHoursOutOfRangeError создаёт ошибку с кодом ErrorCodeCoachingHoursOutOfRange
func NewCoachingHoursOutOfRangeError(msg string) *DomainError {
	return &DomainError{
		Code:    ErrorCodeCoachingHoursOutOfRange,
		Message: msg,
	}
}

// NewNotFoundError создаёт ошибку с кодом ErrorCodeNotFound
func NewNotFoundError(msg string) *DomainError {
	return &DomainError{
		Code:    ErrorCodeNotFound,
		Message: msg,
	}
}
