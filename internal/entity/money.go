package entity

import (
	"fmt"
	"math"
)

// Money — денежная сумма в пенсах фунта стерлингов
type Money int64

// PencePerPound — число пенсов в одном фунте
const PencePerPound = 100

// Mul умножает сумму на целый коэффициент
func (m Money) Mul(n int) Money {
	return m * Money(n)
}

// MulFloat умножает сумму на дробный коэффициент и округляет до целого пенса
func (m Money) MulFloat(f float64) Money {
	return Money(math.Round(float64(m) * f))
}

// Div делит сумму на целый делитель и округляет до целого пенса
func (m Money) Div(n int) Money {
	return Money(math.Round(float64(m) / float64(n)))
}

// Pounds возвращает сумму в фунтах для JSON-ответов
func (m Money) Pounds() float64 {
	return float64(m) / PencePerPound
}

// String печатает сумму как "£12.34"
func (m Money) String() string {
	sign := ""
	v := m
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s£%d.%02d", sign, v/PencePerPound, v%PencePerPound)
}
