package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/parsecsion/north-sussex-judo-calculator/internal/entity"
)

const reportRule = "======================================================="

type reportService struct {
	athletes AthleteService
}

// NewReportService создаёт реализацию ReportService поверх AthleteService
func NewReportService(athletes AthleteService) ReportService {
	return &reportService{athletes: athletes}
}

func (s *reportService) AthleteReport(ctx context.Context, name string) (string, error) {
	af, err := s.athletes.CalculateFee(ctx, name)
	if err != nil {
		return "", err
	}
	return renderAthleteReport(*af), nil
}

func (s *reportService) SummaryReport(ctx context.Context) (string, error) {
	summary, err := s.athletes.CalculateAllFees(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, item := range summary.Items {
		b.WriteString(renderAthleteReport(item))
		b.WriteString("\n")
	}

	b.WriteString("\n" + reportRule + "\n")
	b.WriteString("FACILITY MONTHLY SUMMARY\n")
	b.WriteString(reportRule + "\n")
	fmt.Fprintf(&b, "Total Registered Athletes: %d\n", summary.TotalAthletes)
	fmt.Fprintf(&b, "Total Monthly Revenue: %s\n", summary.TotalMonthlyRevenue)
	if summary.TotalAthletes > 0 {
		fmt.Fprintf(&b, "Average Fee per Athlete: %s\n", summary.AverageFee)
	}
	fmt.Fprintf(&b, "Report Generated: %s\n", summary.GeneratedAt.Format("January 2, 2006 at 3:04 PM"))

	b.WriteString("\nTRAINING PLAN DISTRIBUTION:\n")
	for _, plan := range entity.Plans() {
		if count, ok := summary.PlanDistribution[plan]; ok {
			fmt.Fprintf(&b, "• %s: %d athletes\n", plan, count)
		}
	}

	return b.String(), nil
}

func (s *reportService) ProgramInfo() string {
	var b strings.Builder
	b.WriteString("NORTH SUSSEX JUDO TRAINING PROGRAMS\n")
	b.WriteString("\nTRAINING PLANS:\n")
	b.WriteString(reportRule + "\n")
	for _, plan := range entity.Plans() {
		info := plan.Info()
		eligibility := "not permitted"
		if info.CompetitionEligible {
			eligibility = "permitted"
		}
		fmt.Fprintf(&b, "• %s: %d sessions per week, %s weekly, %s monthly, competitions %s\n",
			plan, info.SessionsPerWeek, info.WeeklyFee, info.WeeklyFee.Mul(entity.WeeksPerMonth), eligibility)
	}

	b.WriteString("\nADDITIONAL SERVICES:\n")
	b.WriteString(reportRule + "\n")
	fmt.Fprintf(&b, "• Private coaching: %s per hour, up to %d hours per week\n",
		entity.CoachingRatePerHour, entity.MaxCoachingHoursPerWeek)
	fmt.Fprintf(&b, "• Competition entry: %s per competition, up to %d per month\n",
		entity.CompetitionEntryFee, entity.MaxCompetitionsPerMonth)

	b.WriteString("\nWEIGHT CATEGORIES:\n")
	b.WriteString(reportRule + "\n")
	for _, cat := range entity.WeightCategories() {
		if limit, ok := cat.UpperBoundKg(); ok {
			fmt.Fprintf(&b, "• %s: up to %gkg\n", cat, limit)
		} else {
			fmt.Fprintf(&b, "• %s: over 100kg\n", cat)
		}
	}

	return b.String()
}

func renderAthleteReport(af AthleteFees) string {
	a := af.Athlete
	fees := af.Fees

	var b strings.Builder
	b.WriteString("\n" + reportRule + "\n")
	fmt.Fprintf(&b, "MONTHLY FEE REPORT - %s\n", strings.ToUpper(a.Name))
	b.WriteString(reportRule + "\n\n")

	fmt.Fprintf(&b, "Training Plan: %s\n", a.Plan)
	fmt.Fprintf(&b, "Sessions per week: %d\n\n", a.Plan.Info().SessionsPerWeek)

	b.WriteString("FEE BREAKDOWN:\n")
	fmt.Fprintf(&b, "• Training fees (%d weeks): %s\n", entity.WeeksPerMonth, fees.TrainingFee)
	if a.CoachingHours > 0 {
		fmt.Fprintf(&b, "• Private coaching (%gh/week): %s\n", a.CoachingHours, fees.CoachingFee)
	}
	if a.Competitions > 0 {
		fmt.Fprintf(&b, "• Competition entries (%d): %s\n", a.Competitions, fees.CompetitionFee)
	}

	fmt.Fprintf(&b, "\nTOTAL MONTHLY FEE: %s\n\n", fees.Total)

	b.WriteString("ATHLETE DETAILS:\n")
	fmt.Fprintf(&b, "• %s\n", a.WeightAnalysis())

	return b.String()
}
