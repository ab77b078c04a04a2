package utils

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// ParseAmount разбирает пользовательский ввод суммы или процента.
// Пустая строка, мусор и бесконечности дают ok=false.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false
	}
	// "12,5" из полей с индонезийской локалью
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// PercentOf возвращает round(amount * pct / 100) в целых рупиях.
func PercentOf(amount int64, pct float64) int64 {
	if !IsFinite(pct) {
		return 0
	}
	return decimal.NewFromInt(amount).
		Mul(decimal.NewFromFloat(pct)).
		Div(hundred).
		Round(0).
		IntPart()
}

// DivRound возвращает round(amount / n) в целых рупиях.
func DivRound(amount int64, n int) int64 {
	if n <= 0 {
		return 0
	}
	return decimal.NewFromInt(amount).
		Div(decimal.NewFromInt(int64(n))).
		Round(0).
		IntPart()
}

// MulRound возвращает round(a * b) для площади и цены за метр.
func MulRound(a float64, b int64) int64 {
	if !IsFinite(a) {
		return 0
	}
	return decimal.NewFromFloat(a).Mul(decimal.NewFromInt(b)).Round(0).IntPart()
}

// MaxInt64 возвращает большее из двух значений
func MaxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// MinInt64 возвращает меньшее из двух значений
func MinInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
