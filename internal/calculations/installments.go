package calculations

import (
	"fmt"

	"github.com/rumahkita/penjualan-pricing/internal/scheme"
	"github.com/rumahkita/penjualan-pricing/pkg/utils"
)

const noPeriod = "-"

// ScheduleInput - данные, из которых строится график
type ScheduleInput struct {
	Kind      scheme.Kind
	Harga     int64 // база этапов progress-схем
	DPAmount  int64
	Remaining int64
	DPPercent float64
}

type milestone struct {
	label string
	pct   float64
}

// progressMilestones возвращает этапы строительства после DP.
// Последний этап получает остаток.
func progressMilestones(kind scheme.Kind, dpPercent float64) []milestone {
	switch kind {
	case scheme.KindProgress3:
		plat := 20.0
		if dpPercent >= 50 {
			plat = 15.0
		}
		return []milestone{
			{"Pengecoran Plat lantai 2", plat},
			{"Pengecoran Plat lantai 3", plat},
			{"Bangunan Hitam 100%", 10},
			{"Pengecatan Terakhir & Serah Terima", 10},
		}
	case scheme.KindProgress2:
		plat := 40.0
		if dpPercent >= 50 {
			plat = 30.0
		}
		return []milestone{
			{"Pengecoran Plat lantai 2", plat},
			{"Bata terpasang 100%", 10},
			{"Pengecatan Terakhir & Serah Terima", 10},
		}
	default:
		return nil
	}
}

// BuildSchedule строит упорядоченный график платежей для схемы.
// Без выбранной схемы график пуст; для неизвестной схемы - только DP.
func BuildSchedule(in ScheduleInput) []InstallmentRow {
	if in.Kind.Class() == scheme.ClassNone {
		return []InstallmentRow{}
	}

	rows := []InstallmentRow{{Label: "DP", Amount: in.DPAmount, Period: noPeriod}}

	switch in.Kind.Class() {
	case scheme.ClassKPR:
		rows = append(rows, InstallmentRow{Label: "Sisa Plafon", Amount: in.Remaining, Period: noPeriod})
	case scheme.ClassCash:
		rows = append(rows, InstallmentRow{Label: "Sisa Pembayaran", Amount: in.Remaining, Period: noPeriod})
	case scheme.ClassProgress:
		rows = append(rows, progressRows(in)...)
	case scheme.ClassInhouse:
		rows = append(rows, inhouseRows(in.Remaining, in.Kind.Installments())...)
	}

	return rows
}

func progressRows(in ScheduleInput) []InstallmentRow {
	stages := progressMilestones(in.Kind, in.DPPercent)
	rows := make([]InstallmentRow, 0, len(stages))
	assigned := in.DPAmount

	for i, st := range stages {
		var amount int64
		if i < len(stages)-1 {
			amount = utils.PercentOf(in.Harga, st.pct)
			assigned += amount
		} else {
			amount = utils.MaxInt64(in.Harga-assigned, 0)
		}
		rows = append(rows, InstallmentRow{Label: st.label, Amount: amount, Period: noPeriod})
	}
	return rows
}

func inhouseRows(remaining int64, n int) []InstallmentRow {
	if n <= 0 {
		return nil
	}
	per := utils.DivRound(remaining, n)
	// на малых остатках округление вверх переполняет график
	if per*int64(n-1) > remaining {
		per = remaining / int64(n)
	}

	rows := make([]InstallmentRow, 0, n)
	var assigned int64
	for i := 1; i <= n; i++ {
		amount := per
		if i == n {
			amount = utils.MaxInt64(remaining-assigned, 0)
		}
		assigned += amount
		rows = append(rows, InstallmentRow{
			Label:  fmt.Sprintf("Cicilan %d", i),
			Amount: amount,
			Period: fmt.Sprintf("%d bulan", i),
		})
	}
	return rows
}
