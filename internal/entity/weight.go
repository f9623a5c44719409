package entity

// WeightCategory — строгий тип для весовой категории
type WeightCategory string

const (
	// CategoryFlyweight — до 66 кг включительно
	CategoryFlyweight WeightCategory = "Flyweight"
	// CategoryLightweight — до 73 кг включительно
	CategoryLightweight WeightCategory = "Lightweight"
	// CategoryLightMiddleweight — до 81 кг включительно
	CategoryLightMiddleweight WeightCategory = "Light-Middleweight"
	// CategoryMiddleweight — до 90 кг включительно
	CategoryMiddleweight WeightCategory = "Middleweight"
	// CategoryLightHeavyweight — до 100 кг включительно
	CategoryLightHeavyweight WeightCategory = "Light-Heavyweight"
	// CategoryHeavyweight — свыше 100 кг
	CategoryHeavyweight WeightCategory = "Heavyweight"
)

type weightBand struct {
	category WeightCategory
	upperKg  float64
}

// Границы включительные и проверяются по возрастанию: выигрывает первая подошедшая
var weightBands = []weightBand{
	{CategoryFlyweight, 66},
	{CategoryLightweight, 73},
	{CategoryLightMiddleweight, 81},
	{CategoryMiddleweight, 90},
	{CategoryLightHeavyweight, 100},
}

// WeightCategoryFor определяет весовую категорию по весу в килограммах
func WeightCategoryFor(weightKg float64) WeightCategory {
	for _, b := range weightBands {
		if weightKg <= b.upperKg {
			return b.category
		}
	}
	return CategoryHeavyweight
}

// WeightCategories возвращает категории от самой лёгкой к самой тяжёлой
func WeightCategories() []WeightCategory {
	cats := make([]WeightCategory, 0, len(weightBands)+1)
	for _, b := range weightBands {
		cats = append(cats, b.category)
	}
	return append(cats, CategoryHeavyweight)
}

// UpperBoundKg возвращает верхнюю границу категории; у Heavyweight границы нет
func (c WeightCategory) UpperBoundKg() (float64, bool) {
	for _, b := range weightBands {
		if b.category == c {
			return b.upperKg, true
		}
	}
	return 0, false
}
