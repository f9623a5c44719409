package entity

// Тарифные константы клуба
const (
	// WeeksPerMonth — расчётный месяц всегда из четырёх недель
	WeeksPerMonth = 4
	// MaxCoachingHoursPerWeek — предел часов индивидуальных тренировок в неделю
	MaxCoachingHoursPerWeek = 5
	// MaxCompetitionsPerMonth — предел соревнований в месяц
	MaxCompetitionsPerMonth = 4

	// CoachingRatePerHour — стоимость часа индивидуальной тренировки
	CoachingRatePerHour Money = 950
	// CompetitionEntryFee — взнос за одно соревнование
	CompetitionEntryFee Money = 2200
)

// Допустимый вес спортсмена при регистрации
const (
	MinWeightKg float64 = 30
	MaxWeightKg float64 = 200
)
