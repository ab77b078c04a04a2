package calculations

import "github.com/rumahkita/penjualan-pricing/pkg/utils"

// PriceResult - результат определения цены юнита
type PriceResult struct {
	BasePrice        int64
	LandExcessAmount int64
	Subtotal         int64
	// AreaClamped и PriceClamped выставляются, когда отрицательный ввод заменён нулём
	AreaClamped  bool
	PriceClamped bool
}

// ResolvePrice определяет базовую цену и добавляет доплату за kelebihan tanah.
// Отсутствующие данные дают 0, ошибок нет.
func ResolvePrice(s *SchemeInfo, unit *UnitInfo, excessArea float64, pricePerExcessUnit int64) PriceResult {
	var base int64
	switch {
	case s != nil && s.PriceOverride != nil:
		base = *s.PriceOverride
	case unit != nil:
		base = unit.BasePrice
	}
	base = utils.MaxInt64(base, 0)

	res := PriceResult{BasePrice: base}

	area := excessArea
	if !utils.IsFinite(area) || area < 0 {
		area = 0
		res.AreaClamped = true
	}
	perUnit := pricePerExcessUnit
	if perUnit < 0 {
		perUnit = 0
		res.PriceClamped = true
	}

	res.LandExcessAmount = utils.MulRound(area, perUnit)
	res.Subtotal = base + res.LandExcessAmount
	return res
}
