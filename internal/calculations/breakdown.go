package calculations

import (
	"strconv"

	"github.com/rumahkita/penjualan-pricing/internal/scheme"
)

// Calculate рассчитывает полную разбивку цены и график платежей.
// Чистая функция: одинаковый ввод даёт одинаковый результат.
func Calculate(in PricingInput, opts Options) *PriceBreakdown {
	kind := scheme.KindNone
	if in.Scheme != nil && in.Scheme.Kind != "" {
		kind = in.Scheme.Kind
	}

	price := ResolvePrice(in.Scheme, in.Unit, in.ExcessArea, in.PricePerExcessUnit)

	var adjustments []Adjustment
	if price.AreaClamped {
		adjustments = append(adjustments, Adjustment{
			Field:     "kelebihan_tanah",
			Requested: strconv.FormatFloat(in.ExcessArea, 'f', -1, 64),
			Applied:   "0",
			Reason:    "kelebihan tanah tidak boleh negatif",
		})
	}
	if price.PriceClamped {
		adjustments = append(adjustments, Adjustment{
			Field:     "harga_per_meter",
			Requested: strconv.FormatInt(in.PricePerExcessUnit, 10),
			Applied:   "0",
			Reason:    "harga per meter tidak boleh negatif",
		})
	}

	disc := ApplyDiscount(price.Subtotal, in.DiscountValue, in.DiscountKind)
	if disc.Clamped {
		adjustments = append(adjustments, Adjustment{
			Field:     "diskon",
			Requested: in.DiscountValue,
			Applied:   disc.Suggested,
			Reason:    discountReason(in.DiscountKind),
		})
	}

	dp := ConstrainDP(kind, in.DPPercent)
	if dp.Adjusted {
		adjustments = append(adjustments, Adjustment{
			Field:     "dp",
			Requested: formatPercent(in.DPPercent),
			Applied:   formatPercent(dp.Percent),
			Reason:    "dp di luar rentang " + formatPercent(dp.Range.Min) + "-" + formatPercent(dp.Range.Max) + "%",
		})
	}

	dpAmount, remaining := DPAmounts(disc.Total, dp.Percent)

	harga := price.Subtotal
	if opts.ProgressBasis == BasisTotal {
		harga = disc.Total
	}

	rows := BuildSchedule(ScheduleInput{
		Kind:      kind,
		Harga:     harga,
		DPAmount:  dpAmount,
		Remaining: remaining,
		DPPercent: dp.Percent,
	})

	return &PriceBreakdown{
		Scheme:           kind,
		BasePrice:        price.BasePrice,
		LandExcessAmount: price.LandExcessAmount,
		Subtotal:         price.Subtotal,
		DiscountAmount:   disc.Amount,
		Total:            disc.Total,
		DPPercent:        dp.Percent,
		DPRange:          dp.Range,
		DPAmount:         dpAmount,
		RemainingBalance: remaining,
		Schedule:         rows,
		Adjustments:      adjustments,
	}
}

func discountReason(kind DiscountKind) string {
	if kind == DiscountPercent {
		return "diskon persen maksimal 100%"
	}
	return "diskon tidak boleh melebihi harga"
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
