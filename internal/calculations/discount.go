package calculations

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/rumahkita/penjualan-pricing/pkg/utils"
)

var maxPercent = decimal.NewFromInt(100)

// DiscountResult - результат применения скидки
type DiscountResult struct {
	Amount int64
	Total  int64
	// Clamped выставляется, когда ввод превысил границу для своего типа.
	// Suggested содержит границу, которую можно подставить в поле.
	Clamped   bool
	Suggested string
}

// ApplyDiscount применяет скидку в процентах или фиксированной суммой.
// Пустое, нечисловое или неположительное значение означает отсутствие скидки.
func ApplyDiscount(subtotal int64, raw string, kind DiscountKind) DiscountResult {
	subtotal = utils.MaxInt64(subtotal, 0)
	res := DiscountResult{Total: subtotal}

	value, ok := utils.ParseAmount(raw)
	if !ok || !value.IsPositive() {
		return res
	}

	switch kind {
	case DiscountPercent:
		if value.GreaterThan(maxPercent) {
			value = maxPercent
			res.Clamped = true
			res.Suggested = "100"
		}
		res.Amount = utils.PercentOf(subtotal, value.InexactFloat64())
	case DiscountFixed:
		amount := value.Round(0).IntPart()
		if value.GreaterThan(decimal.NewFromInt(subtotal)) {
			amount = subtotal
			res.Clamped = true
			res.Suggested = strconv.FormatInt(subtotal, 10)
		}
		res.Amount = amount
	default:
		return res
	}

	res.Amount = utils.MinInt64(utils.MaxInt64(res.Amount, 0), subtotal)
	res.Total = utils.MaxInt64(subtotal-res.Amount, 0)
	return res
}
