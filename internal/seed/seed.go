// Package seed загружает демонстрационный набор спортсменов.
// Набор применяется композиционным корнем при старте, сам движок
// никаких данных не создаёт.
package seed

import (
	"context"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/parsecsion/north-sussex-judo-calculator/internal/entity"
	"github.com/parsecsion/north-sussex-judo-calculator/internal/usecase"
)

// athleteSeed описывает одного спортсмена в seed-файле
type athleteSeed struct {
	Name          string  `yaml:"name"`
	Plan          string  `yaml:"plan"`
	WeightKg      float64 `yaml:"weight_kg"`
	Competitions  int     `yaml:"competitions"`
	CoachingHours float64 `yaml:"coaching_hours"`
}

// Defaults возвращает встроенный демонстрационный набор:
// все три плана и пограничные весовые случаи
func Defaults() []usecase.RegisterAthleteInput {
	return []usecase.RegisterAthleteInput{
		{Name: "James Mitchell", Plan: entity.PlanElite, WeightKg: 78.5, Competitions: 3, CoachingHours: 4},
		{Name: "Sarah Chen", Plan: entity.PlanIntermediate, WeightKg: 67.2, Competitions: 2, CoachingHours: 2},
		{Name: "Robert Taylor", Plan: entity.PlanBeginner, WeightKg: 85.1, Competitions: 0, CoachingHours: 1},
		{Name: "Emma Rodriguez", Plan: entity.PlanElite, WeightKg: 72.8, Competitions: 4, CoachingHours: 5},
		{Name: "Michael Johnson", Plan: entity.PlanIntermediate, WeightKg: 81.5, Competitions: 1, CoachingHours: 0},
		{Name: "Lisa Anderson", Plan: entity.PlanBeginner, WeightKg: 69.3, Competitions: 0, CoachingHours: 0},
	}
}

// LoadFile читает набор спортсменов из YAML-файла
func LoadFile(path string) ([]usecase.RegisterAthleteInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var entries []athleteSeed
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	inputs := make([]usecase.RegisterAthleteInput, 0, len(entries))
	for _, e := range entries {
		plan, err := entity.ParseTrainingPlan(e.Plan)
		if err != nil {
			return nil, fmt.Errorf("seed athlete %q: %w", e.Name, err)
		}
		inputs = append(inputs, usecase.RegisterAthleteInput{
			Name:          e.Name,
			Plan:          plan,
			WeightKg:      e.WeightKg,
			Competitions:  e.Competitions,
			CoachingHours: e.CoachingHours,
		})
	}
	return inputs, nil
}

// Apply регистрирует спортсменов; некорректные записи пропускаются
func Apply(ctx context.Context, svc usecase.AthleteService, inputs []usecase.RegisterAthleteInput) {
	for _, in := range inputs {
		if _, err := svc.Register(ctx, in); err != nil {
			log.Printf("skipping seed athlete %q: %v", in.Name, err)
		}
	}
}
