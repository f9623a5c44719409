package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/parsecsion/north-sussex-judo-calculator/internal/entity"
	"github.com/parsecsion/north-sussex-judo-calculator/internal/usecase/repo"
)

type athleteService struct {
	athleteRepo          repo.AthleteRepository
	caseInsensitiveNames bool
}

// NewAthleteService создаёт реализацию AthleteService.
// caseInsensitiveNames включает сравнение имён без учёта регистра
// при проверке дубликатов и поиске.
func NewAthleteService(athleteRepo repo.AthleteRepository, caseInsensitiveNames bool) AthleteService {
	return &athleteService{
		athleteRepo:          athleteRepo,
		caseInsensitiveNames: caseInsensitiveNames,
	}
}

func (s *athleteService) Register(
	ctx context.Context,
	input RegisterAthleteInput,
) (*entity.Athlete, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, NewEmptyNameError("athlete name cannot be empty")
	}

	existing, err := s.findByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, NewDuplicateNameError("an athlete with this name is already registered")
	}

	if input.WeightKg < entity.MinWeightKg || input.WeightKg > entity.MaxWeightKg {
		return nil, NewWeightOutOfRangeError(fmt.Sprintf(
			"weight must be between %g and %g kg", entity.MinWeightKg, entity.MaxWeightKg,
		))
	}

	if input.Competitions < 0 || input.Competitions > entity.MaxCompetitionsPerMonth {
		return nil, NewCompetitionCountOutOfRangeError(fmt.Sprintf(
			"competitions per month must be between 0 and %d", entity.MaxCompetitionsPerMonth,
		))
	}

	if input.Competitions > 0 && !input.Plan.Info().CompetitionEligible {
		return nil, NewCompetitionNotAllowedError(fmt.Sprintf(
			"%s athletes cannot enter competitions", input.Plan,
		))
	}

	if input.CoachingHours < 0 || input.CoachingHours > entity.MaxCoachingHoursPerWeek {
		return nil, NewCoachingHoursOutOfRangeError(fmt.Sprintf(
			"private coaching hours must be between 0 and %d per week", entity.MaxCoachingHoursPerWeek,
		))
	}

	athlete := &entity.Athlete{
		Name:          name,
		Plan:          input.Plan,
		WeightKg:      input.WeightKg,
		Competitions:  input.Competitions,
		CoachingHours: input.CoachingHours,
		RegisteredAt:  time.Now().UTC(),
	}

	if err := s.athleteRepo.Save(ctx, athlete); err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return nil, NewDuplicateNameError("an athlete with this name is already registered")
		}
		return nil, err
	}

	return athlete, nil
}

func (s *athleteService) Remove(ctx context.Context, name string) error {
	athlete, err := s.findByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return err
	}
	if athlete == nil {
		return NewNotFoundError("athlete not found")
	}

	if err := s.athleteRepo.Delete(ctx, athlete.Name); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewNotFoundError("athlete not found")
		}
		return err
	}
	return nil
}

func (s *athleteService) List(ctx context.Context) ([]*entity.Athlete, error) {
	return s.athleteRepo.List(ctx)
}

func (s *athleteService) CalculateFee(ctx context.Context, name string) (*AthleteFees, error) {
	athlete, err := s.findByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	if athlete == nil {
		return nil, NewNotFoundError("athlete not found")
	}

	return &AthleteFees{
		Athlete: athlete,
		Fees:    athlete.MonthlyFees(),
	}, nil
}

func (s *athleteService) CalculateAllFees(ctx context.Context) (*Summary, error) {
	athletes, err := s.athleteRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalAthletes:    len(athletes),
		PlanDistribution: make(map[entity.TrainingPlan]int),
		Items:            make([]AthleteFees, 0, len(athletes)),
		GeneratedAt:      time.Now().UTC(),
	}

	for _, a := range athletes {
		fees := a.MonthlyFees()
		summary.Items = append(summary.Items, AthleteFees{Athlete: a, Fees: fees})
		summary.TotalMonthlyRevenue += fees.Total
		summary.PlanDistribution[a.Plan]++
	}

	if summary.TotalAthletes > 0 {
		summary.AverageFee = summary.TotalMonthlyRevenue.Div(summary.TotalAthletes)
	}

	return summary, nil
}

// findByName ищет спортсмена с учётом политики регистра имён.
// Возвращает nil без ошибки когда спортсмена нет.
func (s *athleteService) findByName(ctx context.Context, name string) (*entity.Athlete, error) {
	if !s.caseInsensitiveNames {
		athlete, err := s.athleteRepo.GetByName(ctx, name)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return athlete, nil
	}

	// реестр маленький, линейный проход дешевле отдельного индекса
	athletes, err := s.athleteRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range athletes {
		if strings.EqualFold(a.Name, name) {
			return a, nil
		}
	}
	return nil, nil
}
