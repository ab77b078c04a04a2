package calculations

import (
	"github.com/rumahkita/penjualan-pricing/internal/scheme"
	"github.com/rumahkita/penjualan-pricing/pkg/utils"
)

// DPResult - скорректированный процент DP и допустимый диапазон
type DPResult struct {
	Percent  float64
	Range    scheme.DPRange
	Adjusted bool
}

// ConstrainDP приводит процент DP к диапазону схемы.
// Progress и inhouse сбрасываются к минимуму, остальные зажимаются в [0; 100].
func ConstrainDP(kind scheme.Kind, pct float64) DPResult {
	r, snapTo := kind.DPRange()
	res := DPResult{Percent: pct, Range: r}

	if !utils.IsFinite(pct) {
		res.Percent = snapTo
		res.Adjusted = true
		return res
	}
	if r.Contains(pct) {
		return res
	}

	res.Adjusted = true
	switch {
	case kind.Snaps():
		res.Percent = snapTo
	case pct < r.Min:
		res.Percent = r.Min
	default:
		res.Percent = r.Max
	}
	return res
}

// DPAmounts рассчитывает сумму DP и остаток после неё
func DPAmounts(total int64, pct float64) (dpAmount, remaining int64) {
	dpAmount = utils.PercentOf(utils.MaxInt64(total, 0), pct)
	remaining = utils.MaxInt64(total-dpAmount, 0)
	return dpAmount, remaining
}
