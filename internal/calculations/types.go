package calculations

import "github.com/rumahkita/penjualan-pricing/internal/scheme"

// DiscountKind - тип скидки (tipe_diskon)
type DiscountKind string

const (
	DiscountPercent DiscountKind = "percent"
	DiscountFixed   DiscountKind = "fixed"
)

// Basis - база расчёта этапов progress-схем
type Basis string

const (
	// BasisHarga - цена до скидки, как в исходном расчёте
	BasisHarga Basis = "harga"
	// BasisTotal - итог после скидки
	BasisTotal Basis = "total"
)

// Options настраивает расчёт
type Options struct {
	ProgressBasis Basis
}

// SchemeInfo - то, что расчёту нужно знать о выбранной схеме оплаты
type SchemeInfo struct {
	Kind          scheme.Kind
	PriceOverride *int64
}

// UnitInfo - справочные данные типа юнита
type UnitInfo struct {
	BasePrice int64
}

// PricingInput - пользовательский ввод диалога транзакции
type PricingInput struct {
	Scheme             *SchemeInfo
	Unit               *UnitInfo
	ExcessArea         float64
	PricePerExcessUnit int64
	DiscountValue      string
	DiscountKind       DiscountKind
	DPPercent          float64
}

// InstallmentRow представляет одну строку графика платежей
type InstallmentRow struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
	Period string `json:"period"`
}

// Adjustment описывает поправку ввода, сделанную расчётом
type Adjustment struct {
	Field     string `json:"field"`
	Requested string `json:"requested"`
	Applied   string `json:"applied"`
	Reason    string `json:"reason"`
}

// PriceBreakdown - производный расчёт цены, нигде не хранится как ввод
type PriceBreakdown struct {
	Scheme           scheme.Kind      `json:"scheme"`
	BasePrice        int64            `json:"base_price"`
	LandExcessAmount int64            `json:"land_excess_amount"`
	Subtotal         int64            `json:"subtotal"`
	DiscountAmount   int64            `json:"discount_amount"`
	Total            int64            `json:"post_discount_total"`
	DPPercent        float64          `json:"dp_percent"`
	DPRange          scheme.DPRange   `json:"dp_range"`
	DPAmount         int64            `json:"dp_amount"`
	RemainingBalance int64            `json:"remaining_balance"`
	Schedule         []InstallmentRow `json:"schedule"`
	Adjustments      []Adjustment     `json:"adjustments,omitempty"`
}

// ScheduleSum возвращает сумму всех строк графика, включая DP
func (b *PriceBreakdown) ScheduleSum() int64 {
	var sum int64
	for _, row := range b.Schedule {
		sum += row.Amount
	}
	return sum
}
