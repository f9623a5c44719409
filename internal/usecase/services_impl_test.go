package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parsecsion/north-sussex-judo-calculator/internal/entity"
	"github.com/parsecsion/north-sussex-judo-calculator/internal/infrastructure/repository/memory"
)

func validInput() RegisterAthleteInput {
	return RegisterAthleteInput{
		Name:          "Sarah Chen",
		Plan:          entity.PlanIntermediate,
		WeightKg:      70,
		Competitions:  2,
		CoachingHours: 3,
	}
}

func requireDomainCode(t *testing.T, err error, code ErrorCode) {
	t.Helper()
	require.Error(t, err)

	var de *DomainError
	require.ErrorAs(t, err, &de)
	require.Equal(t, code, de.Code)
}

func TestAthleteService_Register_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewAthleteService(memory.NewAthleteRepository(), false)

	athlete, err := svc.Register(ctx, validInput())
	require.NoError(t, err)
	require.Equal(t, "Sarah Chen", athlete.Name)
	require.Equal(t, entity.PlanIntermediate, athlete.Plan)
	require.False(t, athlete.RegisteredAt.IsZero())

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Sarah Chen", list[0].Name)
	require.Equal(t, 70.0, list[0].WeightKg)
}

func TestAthleteService_Register_TrimsName(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewAthleteService(memory.NewAthleteRepository(), false)

	in := validInput()
	in.Name = "  Sarah Chen  "
	athlete, err := svc.Register(ctx, in)
	require.NoError(t, err)
	require.Equal(t, "Sarah Chen", athlete.Name)
}

func TestAthleteService_Register_ValidationErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*RegisterAthleteInput)
		code   ErrorCode
	}{
		{
			name:   "EMPTY_NAME",
			mutate: func(in *RegisterAthleteInput) { in.Name = "   " },
			code:   ErrorCodeEmptyName,
		},
		{
			name:   "WEIGHT_OUT_OF_RANGE below",
			mutate: func(in *RegisterAthleteInput) { in.WeightKg = 29.99 },
			code:   ErrorCodeWeightOutOfRange,
		},
		{
			name:   "WEIGHT_OUT_OF_RANGE above",
			mutate: func(in *RegisterAthleteInput) { in.WeightKg = 200.01 },
			code:   ErrorCodeWeightOutOfRange,
		},
		{
			name:   "COMPETITION_COUNT_OUT_OF_RANGE negative",
			mutate: func(in *RegisterAthleteInput) { in.Competitions = -1 },
			code:   ErrorCodeCompetitionCountOutOfRange,
		},
		{
			name:   "COMPETITION_COUNT_OUT_OF_RANGE above limit",
			mutate: func(in *RegisterAthleteInput) { in.Competitions = 5 },
			code:   ErrorCodeCompetitionCountOutOfRange,
		},
		{
			name: "COMPETITION_NOT_ALLOWED for beginner",
			mutate: func(in *RegisterAthleteInput) {
				in.Plan = entity.PlanBeginner
				in.Competitions = 1
			},
			code: ErrorCodeCompetitionNotAllowed,
		},
		{
			name:   "COACHING_HOURS_OUT_OF_RANGE negative",
			mutate: func(in *RegisterAthleteInput) { in.CoachingHours = -0.5 },
			code:   ErrorCodeCoachingHoursOutOfRange,
		},
		{
			name:   "COACHING_HOURS_OUT_OF_RANGE above limit",
			mutate: func(in *RegisterAthleteInput) { in.CoachingHours = 5.5 },
			code:   ErrorCodeCoachingHoursOutOfRange,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := NewAthleteService(memory.NewAthleteRepository(), false)

			in := validInput()
			tc.mutate(&in)

			_, err := svc.Register(ctx, in)
			requireDomainCode(t, err, tc.code)

			// реестр не изменился
			list, listErr := svc.List(ctx)
			require.NoError(t, listErr)
			require.Empty(t, list)
		})
	}
}

func TestAthleteService_Register_MaxCompetitionsRegardlessOfPlan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// превышение лимита соревнований бьёт раньше проверки плана
	svc := NewAthleteService(memory.NewAthleteRepository(), false)
	in := validInput()
	in.Plan = entity.PlanBeginner
	in.Competitions = 5

	_, err := svc.Register(ctx, in)
	requireDomainCode(t, err, ErrorCodeCompetitionCountOutOfRange)
}

func TestAthleteService_Register_DuplicateName(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("exact duplicate rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewAthleteService(memory.NewAthleteRepository(), false)

		_, err := svc.Register(ctx, validInput())
		require.NoError(t, err)

		_, err = svc.Register(ctx, validInput())
		requireDomainCode(t, err, ErrorCodeDuplicateName)

		list, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("default policy is case-sensitive", func(t *testing.T) {
		t.Parallel()
		svc := NewAthleteService(memory.NewAthleteRepository(), false)

		_, err := svc.Register(ctx, validInput())
		require.NoError(t, err)

		in := validInput()
		in.Name = "sarah chen"
		_, err = svc.Register(ctx, in)
		require.NoError(t, err)

		list, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
	})

	t.Run("case-insensitive policy rejects either case", func(t *testing.T) {
		t.Parallel()
		svc := NewAthleteService(memory.NewAthleteRepository(), true)

		_, err := svc.Register(ctx, validInput())
		require.NoError(t, err)

		in := validInput()
		in.Name = "SARAH CHEN"
		_, err = svc.Register(ctx, in)
		requireDomainCode(t, err, ErrorCodeDuplicateName)
	})
}

func TestAthleteService_Remove(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewAthleteService(memory.NewAthleteRepository(), false)

	_, err := svc.Register(ctx, validInput())
	require.NoError(t, err)

	t.Run("unknown name", func(t *testing.T) {
		err := svc.Remove(ctx, "John Doe")
		requireDomainCode(t, err, ErrorCodeNotFound)
	})

	t.Run("existing name decrements summary", func(t *testing.T) {
		require.NoError(t, svc.Remove(ctx, "Sarah Chen"))

		summary, err := svc.CalculateAllFees(ctx)
		require.NoError(t, err)
		require.Equal(t, 0, summary.TotalAthletes)
	})
}

func TestAthleteService_List_InsertionOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewAthleteService(memory.NewAthleteRepository(), false)

	names := []string{"Zoe Adams", "Adam Young", "Mia Brown"}
	for _, name := range names {
		in := validInput()
		in.Name = name
		_, err := svc.Register(ctx, in)
		require.NoError(t, err)
	}

	for i := 0; i < 3; i++ {
		list, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		for i, name := range names {
			require.Equal(t, name, list[i].Name)
		}
	}
}

func TestAthleteService_CalculateFee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewAthleteService(memory.NewAthleteRepository(), false)

	t.Run("NOT_FOUND", func(t *testing.T) {
		_, err := svc.CalculateFee(ctx, "nobody")
		requireDomainCode(t, err, ErrorCodeNotFound)
	})

	t.Run("intermediate example", func(t *testing.T) {
		_, err := svc.Register(ctx, validInput())
		require.NoError(t, err)

		fees, err := svc.CalculateFee(ctx, "Sarah Chen")
		require.NoError(t, err)
		require.Equal(t, entity.Money(12000), fees.Fees.TrainingFee)
		require.Equal(t, entity.Money(11400), fees.Fees.CoachingFee)
		require.Equal(t, entity.Money(4400), fees.Fees.CompetitionFee)
		require.Equal(t, entity.Money(27800), fees.Fees.Total)
	})

	t.Run("beginner with no extras", func(t *testing.T) {
		in := RegisterAthleteInput{Name: "Robert Taylor", Plan: entity.PlanBeginner, WeightKg: 85.1}
		_, err := svc.Register(ctx, in)
		require.NoError(t, err)

		fees, err := svc.CalculateFee(ctx, "Robert Taylor")
		require.NoError(t, err)
		require.Equal(t, entity.Money(10000), fees.Fees.Total)
	})
}

func TestAthleteService_CalculateAllFees(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewAthleteService(memory.NewAthleteRepository(), false)

	inputs := []RegisterAthleteInput{
		{Name: "Sarah Chen", Plan: entity.PlanIntermediate, WeightKg: 70, Competitions: 2, CoachingHours: 3},
		{Name: "Robert Taylor", Plan: entity.PlanBeginner, WeightKg: 85.1},
		{Name: "Emma Rodriguez", Plan: entity.PlanElite, WeightKg: 72.8, Competitions: 4, CoachingHours: 5},
	}
	for _, in := range inputs {
		_, err := svc.Register(ctx, in)
		require.NoError(t, err)
	}

	summary, err := svc.CalculateAllFees(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, summary.TotalAthletes)
	require.Len(t, summary.Items, 3)
	require.False(t, summary.GeneratedAt.IsZero())

	// выручка — это сумма итогов по каждому спортсмену
	var want entity.Money
	for _, item := range summary.Items {
		want += item.Fees.Total
	}
	require.Equal(t, want, summary.TotalMonthlyRevenue)
	// Elite: 140 + 190 + 88 = 418; итого 278 + 100 + 418 = 796
	require.Equal(t, entity.Money(79600), summary.TotalMonthlyRevenue)

	require.Equal(t, summary.TotalMonthlyRevenue.Div(3), summary.AverageFee)

	require.Equal(t, map[entity.TrainingPlan]int{
		entity.PlanBeginner:     1,
		entity.PlanIntermediate: 1,
		entity.PlanElite:        1,
	}, summary.PlanDistribution)

	// порядок элементов повторяет порядок регистрации
	require.Equal(t, "Sarah Chen", summary.Items[0].Athlete.Name)
	require.Equal(t, "Robert Taylor", summary.Items[1].Athlete.Name)
	require.Equal(t, "Emma Rodriguez", summary.Items[2].Athlete.Name)

	// повторный вызов без изменений даёт те же данные
	again, err := svc.CalculateAllFees(ctx)
	require.NoError(t, err)
	require.Equal(t, summary.TotalMonthlyRevenue, again.TotalMonthlyRevenue)
	require.Equal(t, summary.TotalAthletes, again.TotalAthletes)
	require.Equal(t, summary.PlanDistribution, again.PlanDistribution)
}
