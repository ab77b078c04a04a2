package calculations

import (
	"testing"

	"github.com/rumahkita/penjualan-pricing/internal/scheme"
)

func amounts(rows []InstallmentRow) []int64 {
	out := make([]int64, len(rows))
	for i, r := range rows {
		out[i] = r.Amount
	}
	return out
}

func sumRows(rows []InstallmentRow) int64 {
	var s int64
	for _, r := range rows {
		s += r.Amount
	}
	return s
}

func equalAmounts(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBuildSchedule(t *testing.T) {
	tests := []struct {
		name        string
		in          ScheduleInput
		wantLabels  []string
		wantAmounts []int64
	}{
		{
			name:        "no scheme",
			in:          ScheduleInput{Kind: scheme.KindNone, DPAmount: 100, Remaining: 900},
			wantLabels:  []string{},
			wantAmounts: []int64{},
		},
		{
			name:        "unknown scheme keeps only DP",
			in:          ScheduleInput{Kind: scheme.KindOther, DPAmount: 100, Remaining: 900},
			wantLabels:  []string{"DP"},
			wantAmounts: []int64{100},
		},
		{
			name:        "kpr",
			in:          ScheduleInput{Kind: scheme.KindKPR, DPAmount: 90_000_000, Remaining: 360_000_000},
			wantLabels:  []string{"DP", "Sisa Plafon"},
			wantAmounts: []int64{90_000_000, 360_000_000},
		},
		{
			name:        "cash keras",
			in:          ScheduleInput{Kind: scheme.KindCashKeras, DPAmount: 135_000_000, Remaining: 315_000_000},
			wantLabels:  []string{"DP", "Sisa Pembayaran"},
			wantAmounts: []int64{135_000_000, 315_000_000},
		},
		{
			name:        "inhouse 3x exact",
			in:          ScheduleInput{Kind: scheme.KindInhouse3x, DPAmount: 300_000_000, Remaining: 300_000_000},
			wantLabels:  []string{"DP", "Cicilan 1", "Cicilan 2", "Cicilan 3"},
			wantAmounts: []int64{300_000_000, 100_000_000, 100_000_000, 100_000_000},
		},
		{
			name:        "inhouse 3x remainder in last row",
			in:          ScheduleInput{Kind: scheme.KindInhouse3x, DPAmount: 50, Remaining: 100},
			wantLabels:  []string{"DP", "Cicilan 1", "Cicilan 2", "Cicilan 3"},
			wantAmounts: []int64{50, 33, 33, 34},
		},
		{
			name:        "inhouse 3x rounding up",
			in:          ScheduleInput{Kind: scheme.KindInhouse3x, DPAmount: 0, Remaining: 5},
			wantLabels:  []string{"DP", "Cicilan 1", "Cicilan 2", "Cicilan 3"},
			wantAmounts: []int64{0, 2, 2, 1},
		},
		{
			name: "progress 2 lantai dp below 50",
			in: ScheduleInput{
				Kind: scheme.KindProgress2, Harga: 1_000_000_000,
				DPAmount: 450_000_000, Remaining: 550_000_000, DPPercent: 45,
			},
			wantLabels:  []string{"DP", "Pengecoran Plat lantai 2", "Bata terpasang 100%", "Pengecatan Terakhir & Serah Terima"},
			wantAmounts: []int64{450_000_000, 400_000_000, 100_000_000, 50_000_000},
		},
		{
			name: "progress 2 lantai dp 50",
			in: ScheduleInput{
				Kind: scheme.KindProgress2, Harga: 1_000_000_000,
				DPAmount: 500_000_000, Remaining: 500_000_000, DPPercent: 50,
			},
			wantLabels:  []string{"DP", "Pengecoran Plat lantai 2", "Bata terpasang 100%", "Pengecatan Terakhir & Serah Terima"},
			wantAmounts: []int64{500_000_000, 300_000_000, 100_000_000, 100_000_000},
		},
		{
			name: "progress 3 lantai dp 40",
			in: ScheduleInput{
				Kind: scheme.KindProgress3, Harga: 800_000_000,
				DPAmount: 320_000_000, Remaining: 480_000_000, DPPercent: 40,
			},
			wantLabels: []string{
				"DP", "Pengecoran Plat lantai 2", "Pengecoran Plat lantai 3",
				"Bangunan Hitam 100%", "Pengecatan Terakhir & Serah Terima",
			},
			wantAmounts: []int64{320_000_000, 160_000_000, 160_000_000, 80_000_000, 80_000_000},
		},
		{
			name: "progress 3 lantai dp 50",
			in: ScheduleInput{
				Kind: scheme.KindProgress3, Harga: 800_000_000,
				DPAmount: 400_000_000, Remaining: 400_000_000, DPPercent: 50,
			},
			wantLabels: []string{
				"DP", "Pengecoran Plat lantai 2", "Pengecoran Plat lantai 3",
				"Bangunan Hitam 100%", "Pengecatan Terakhir & Serah Terima",
			},
			wantAmounts: []int64{400_000_000, 120_000_000, 120_000_000, 80_000_000, 80_000_000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := BuildSchedule(tt.in)
			if rows == nil {
				t.Fatal("rows must not be nil")
			}
			if len(rows) != len(tt.wantLabels) {
				t.Fatalf("expected %d rows, got %d: %+v", len(tt.wantLabels), len(rows), rows)
			}
			for i, label := range tt.wantLabels {
				if rows[i].Label != label {
					t.Errorf("row %d label = %q, want %q", i, rows[i].Label, label)
				}
			}
			if got := amounts(rows); !equalAmounts(got, tt.wantAmounts) {
				t.Errorf("amounts = %v, want %v", got, tt.wantAmounts)
			}
		})
	}
}

func TestBuildScheduleInhousePeriods(t *testing.T) {
	rows := BuildSchedule(ScheduleInput{Kind: scheme.KindInhouse12x, DPAmount: 10, Remaining: 1_000_000})
	if len(rows) != 13 {
		t.Fatalf("expected 13 rows, got %d", len(rows))
	}
	if rows[0].Period != "-" {
		t.Errorf("DP period = %q, want -", rows[0].Period)
	}
	if rows[5].Label != "Cicilan 5" || rows[5].Period != "5 bulan" {
		t.Errorf("row 5 = %+v", rows[5])
	}
	if rows[12].Label != "Cicilan 12" || rows[12].Period != "12 bulan" {
		t.Errorf("last row = %+v", rows[12])
	}
}

func TestBuildScheduleInhouseSum(t *testing.T) {
	remainders := []int64{0, 1, 2, 7, 11, 65, 66, 100, 999, 1_000_001, 333_333_333}

	for _, kind := range []scheme.Kind{scheme.KindInhouse3x, scheme.KindInhouse6x, scheme.KindInhouse12x} {
		for _, remaining := range remainders {
			rows := BuildSchedule(ScheduleInput{Kind: kind, DPAmount: 17, Remaining: remaining})
			if got := sumRows(rows); got != 17+remaining {
				t.Errorf("%s remaining %d: sum %d, want %d (%v)", kind, remaining, got, 17+remaining, amounts(rows))
			}
			for _, r := range rows {
				if r.Amount < 0 {
					t.Errorf("%s remaining %d: negative row %+v", kind, remaining, r)
				}
			}
		}
	}
}
