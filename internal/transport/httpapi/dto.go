package httpapi

import (
	"time"

	"github.com/parsecsion/north-sussex-judo-calculator/internal/entity"
	"github.com/parsecsion/north-sussex-judo-calculator/internal/usecase"
)

// AthleteDTO представляет спортсмена в HTTP JSON.
// Денежные поля отдаются в фунтах с точностью до пенса.
type AthleteDTO struct {
	Name           string    `json:"name"`
	Plan           string    `json:"plan"`
	WeightKg       float64   `json:"weight_kg"`
	WeightCategory string    `json:"weight_category"`
	Competitions   int       `json:"competitions"`
	CoachingHours  float64   `json:"coaching_hours"`
	MonthlyFee     float64   `json:"monthly_fee"`
	RegisteredAt   time.Time `json:"registeredAt"`
}

// FeeBreakdownDTO представляет помесячную стоимость спортсмена в HTTP JSON
type FeeBreakdownDTO struct {
	AthleteName    string  `json:"athlete_name"`
	Plan           string  `json:"plan"`
	TrainingFee    float64 `json:"training_fee"`
	CoachingFee    float64 `json:"coaching_fee"`
	CompetitionFee float64 `json:"competition_fee"`
	TotalFee       float64 `json:"total_fee"`
}

// SummaryDTO представляет сводку по клубу в HTTP JSON
type SummaryDTO struct {
	TotalAthletes       int               `json:"total_athletes"`
	TotalMonthlyRevenue float64           `json:"total_monthly_revenue"`
	AverageFee          float64           `json:"average_fee"`
	PlanDistribution    map[string]int    `json:"plan_distribution"`
	Athletes            []FeeBreakdownDTO `json:"athletes"`
	GeneratedAt         time.Time         `json:"generatedAt"`
}

// athleteRegisterRequest описывает запрос на регистрацию спортсмена
type athleteRegisterRequest struct {
	Name          string  `json:"name"`
	Plan          string  `json:"plan"`
	WeightKg      float64 `json:"weight_kg"`
	Competitions  int     `json:"competitions"`
	CoachingHours float64 `json:"coaching_hours"`
}

// athleteRemoveRequest описывает запрос на удаление спортсмена
type athleteRemoveRequest struct {
	Name string `json:"name"`
}

func athleteToDTO(a *entity.Athlete) *AthleteDTO {
	if a == nil {
		return nil
	}
	return &AthleteDTO{
		Name:           a.Name,
		Plan:           string(a.Plan),
		WeightKg:       a.WeightKg,
		WeightCategory: string(a.WeightCategory()),
		Competitions:   a.Competitions,
		CoachingHours:  a.CoachingHours,
		MonthlyFee:     a.MonthlyFees().Total.Pounds(),
		RegisteredAt:   a.RegisteredAt,
	}
}

func feeBreakdownToDTO(af usecase.AthleteFees) FeeBreakdownDTO {
	return FeeBreakdownDTO{
		AthleteName:    af.Athlete.Name,
		Plan:           string(af.Athlete.Plan),
		TrainingFee:    af.Fees.TrainingFee.Pounds(),
		CoachingFee:    af.Fees.CoachingFee.Pounds(),
		CompetitionFee: af.Fees.CompetitionFee.Pounds(),
		TotalFee:       af.Fees.Total.Pounds(),
	}
}

func summaryToDTO(summary *usecase.Summary) *SummaryDTO {
	if summary == nil {
		return nil
	}
	athletes := make([]FeeBreakdownDTO, 0, len(summary.Items))
	for _, item := range summary.Items {
		athletes = append(athletes, feeBreakdownToDTO(item))
	}
	distribution := make(map[string]int, len(summary.PlanDistribution))
	for plan, count := range summary.PlanDistribution {
		distribution[string(plan)] = count
	}
	return &SummaryDTO{
		TotalAthletes:       summary.TotalAthletes,
		TotalMonthlyRevenue: summary.TotalMonthlyRevenue.Pounds(),
		AverageFee:          summary.AverageFee.Pounds(),
		PlanDistribution:    distribution,
		Athletes:            athletes,
		GeneratedAt:         summary.GeneratedAt,
	}
}
