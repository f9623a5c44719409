// Package entity содержит основные сущности бизнес-логики
package entity

import (
	"fmt"
	"time"
)

// Athlete — зарегистрированный спортсмен клуба
type Athlete struct {
	Name          string
	Plan          TrainingPlan
	WeightKg      float64
	Competitions  int
	CoachingHours float64
	RegisteredAt  time.Time
}

// WeightCategory возвращает весовую категорию спортсмена
func (a *Athlete) WeightCategory() WeightCategory {
	return WeightCategoryFor(a.WeightKg)
}

// FeeBreakdown — помесячная стоимость по составляющим
type FeeBreakdown struct {
	TrainingFee    Money
	CoachingFee    Money
	CompetitionFee Money
	Total          Money
}

// MonthlyFees считает помесячную стоимость спортсмена по тарифной таблице.
// Всё считается в целых пенсах, округление одно: в часах индивидуальных
// тренировок после умножения на ставку.
func (a *Athlete) MonthlyFees() FeeBreakdown {
	training := a.Plan.Info().WeeklyFee.Mul(WeeksPerMonth)
	coaching := CoachingRatePerHour.MulFloat(a.CoachingHours * WeeksPerMonth)
	competition := CompetitionEntryFee.Mul(a.Competitions)
	return FeeBreakdown{
		TrainingFee:    training,
		CoachingFee:    coaching,
		CompetitionFee: competition,
		Total:          training + coaching + competition,
	}
}

// WeightAnalysis описывает положение веса относительно границы категории
func (a *Athlete) WeightAnalysis() string {
	cat := a.WeightCategory()
	limit, ok := cat.UpperBoundKg()
	if !ok {
		return fmt.Sprintf("Weight: %.1fkg - Heavyweight category (no upper limit)", a.WeightKg)
	}

	diff := limit - a.WeightKg
	switch {
	case diff > 5:
		return fmt.Sprintf("Weight: %.1fkg - Well within %s limit (%gkg)", a.WeightKg, cat, limit)
	case diff > 0:
		return fmt.Sprintf("Weight: %.1fkg - Close to %s limit (%gkg)", a.WeightKg, cat, limit)
	default:
		return fmt.Sprintf("Weight: %.1fkg - Over %s limit (%gkg)", a.WeightKg, cat, limit)
	}
}
