package entity

import "fmt"

// TrainingPlan — строгий тип для тарифного плана тренировок
type TrainingPlan string

const (
	// PlanBeginner — начальный план, без участия в соревнованиях
	PlanBeginner TrainingPlan = "Beginner"
	// PlanIntermediate — средний план
	PlanIntermediate TrainingPlan = "Intermediate"
	// PlanElite — соревновательный план
	PlanElite TrainingPlan = "Elite"
)

// PlanInfo описывает условия тарифного плана
type PlanInfo struct {
	SessionsPerWeek     int
	WeeklyFee           Money
	CompetitionEligible bool
}

// Тарифы фиксированы, новые планы в рантайме не появляются
var planTable = map[TrainingPlan]PlanInfo{
	PlanBeginner:     {SessionsPerWeek: 2, WeeklyFee: 2500, CompetitionEligible: false},
	PlanIntermediate: {SessionsPerWeek: 3, WeeklyFee: 3000, CompetitionEligible: true},
	PlanElite:        {SessionsPerWeek: 5, WeeklyFee: 3500, CompetitionEligible: true},
}

// Plans возвращает все планы в порядке возрастания нагрузки
func Plans() []TrainingPlan {
	return []TrainingPlan{PlanBeginner, PlanIntermediate, PlanElite}
}

// Info возвращает условия плана
func (p TrainingPlan) Info() PlanInfo {
	return planTable[p]
}

// IsValid проверяет что план входит в закрытое перечисление
func (p TrainingPlan) IsValid() bool {
	_, ok := planTable[p]
	return ok
}

// ParseTrainingPlan разбирает название плана из внешнего ввода
func ParseTrainingPlan(s string) (TrainingPlan, error) {
	p := TrainingPlan(s)
	if !p.IsValid() {
		return "", fmt.Errorf("unknown training plan: %q", s)
	}
	return p, nil
}
