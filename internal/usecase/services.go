package usecase

import (
	"context"
	"time"

	"github.com/parsecsion/north-sussex-judo-calculator/internal/entity"
)

// RegisterAthleteInput - данные для регистрации спортсмена
type RegisterAthleteInput struct {
	Name          string
	Plan          entity.TrainingPlan
	WeightKg      float64
	Competitions  int
	CoachingHours float64
}

// AthleteFees - спортсмен вместе с его помесячной стоимостью
type AthleteFees struct {
	Athlete *entity.Athlete
	Fees    entity.FeeBreakdown
}

// Summary - сводка по всем спортсменам клуба.
// TotalMonthlyRevenue — сумма итогов по каждому спортсмену; итоги уже точны
// в целых пенсах, поэтому сумма округлённых и округление суммы совпадают.
type Summary struct {
	TotalAthletes       int
	TotalMonthlyRevenue entity.Money
	AverageFee          entity.Money
	PlanDistribution    map[entity.TrainingPlan]int
	Items               []AthleteFees
	GeneratedAt         time.Time
}

// AthleteService описывает операции реестра спортсменов
type AthleteService interface {
	// Register валидирует данные по порядку и регистрирует спортсмена.
	// При любой ошибке реестр не меняется.
	Register(ctx context.Context, input RegisterAthleteInput) (*entity.Athlete, error)

	// Remove удаляет спортсмена по имени или NOT_FOUND
	Remove(ctx context.Context, name string) error

	// List возвращает спортсменов в порядке регистрации
	List(ctx context.Context) ([]*entity.Athlete, error)

	// CalculateFee считает помесячную стоимость спортсмена или NOT_FOUND
	CalculateFee(ctx context.Context, name string) (*AthleteFees, error)

	// CalculateAllFees считает сводку по всем спортсменам в порядке регистрации
	CalculateAllFees(ctx context.Context) (*Summary, error)
}

// ReportService описывает текстовые отчёты для слоя отображения
type ReportService interface {
	// AthleteReport строит отчёт о стоимости одного спортсмена
	AthleteReport(ctx context.Context, name string) (string, error)

	// SummaryReport строит сводный отчёт по клубу
	SummaryReport(ctx context.Context) (string, error)

	// ProgramInfo строит справку о тарифных планах клуба
	ProgramInfo() string
}
