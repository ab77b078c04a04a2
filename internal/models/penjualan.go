package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rumahkita/penjualan-pricing/internal/calculations"
)

// RawValue принимает из JSON как строку, так и число.
// Поле скидки в диалоге - текстовое, а в API приходит числом.
type RawValue string

func (v *RawValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = RawValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("ожидается строка или число: %w", err)
	}
	*v = RawValue(n.String())
	return nil
}

func (v RawValue) String() string {
	return strings.TrimSpace(string(v))
}

// QuoteRequest - ввод диалога для пересчета на каждое изменение
type QuoteRequest struct {
	TipeID            int64                     `json:"tipe_id"`
	SkemaPembayaranID int64                     `json:"skema_pembayaran_id"`
	KelebihanTanah    float64                   `json:"kelebihan_tanah"`
	HargaPerMeter     int64                     `json:"harga_per_meter"`
	Diskon            RawValue                  `json:"diskon"`
	TipeDiskon        calculations.DiscountKind `json:"tipe_diskon"`
	DP                float64                   `json:"dp"`
}

// PenjualanRequest - плоский payload создания и обновления транзакции.
// GrandTotal и DPAmount - итоги, которые диалог показал пользователю.
type PenjualanRequest struct {
	NoTransaksi       int64                     `json:"no_transaksi" validate:"gt=0"`
	KonsumenID        int64                     `json:"konsumen_id" validate:"gt=0"`
	CreatedID         *int64                    `json:"created_id,omitempty"`
	ProjeksID         *int64                    `json:"projeks_id,omitempty"`
	TipeID            *int64                    `json:"tipe_id,omitempty"`
	KavlingDipesan    string                    `json:"kavling_dipesan" validate:"notblank"`
	KelebihanTanah    *float64                  `json:"kelebihan_tanah,omitempty"`
	HargaPerMeter     *int64                    `json:"harga_per_meter,omitempty"`
	SkemaPembayaranID *int64                    `json:"skema_pembayaran_id,omitempty"`
	Diskon            RawValue                  `json:"diskon,omitempty"`
	TipeDiskon        calculations.DiscountKind `json:"tipe_diskon" validate:"required,oneof=percent fixed"`
	DP                float64                   `json:"dp"`
	GrandTotal        *int64                    `json:"grand_total,omitempty"`
	DPAmount          *int64                    `json:"dp_amount,omitempty"`
}

// QuoteRequest выделяет из payload поля, нужные для расчета
func (r *PenjualanRequest) QuoteRequest() QuoteRequest {
	q := QuoteRequest{
		Diskon:     r.Diskon,
		TipeDiskon: r.TipeDiskon,
		DP:         r.DP,
	}
	if r.TipeID != nil {
		q.TipeID = *r.TipeID
	}
	if r.SkemaPembayaranID != nil {
		q.SkemaPembayaranID = *r.SkemaPembayaranID
	}
	if r.KelebihanTanah != nil {
		q.KelebihanTanah = *r.KelebihanTanah
	}
	if r.HargaPerMeter != nil {
		q.HargaPerMeter = *r.HargaPerMeter
	}
	return q
}

// Penjualan - сохраненная транзакция продажи с серверным расчетом
type Penjualan struct {
	ID                int64                         `json:"id"`
	NoTransaksi       int64                         `json:"no_transaksi"`
	KonsumenID        int64                         `json:"konsumen_id"`
	CreatedID         *int64                        `json:"created_id,omitempty"`
	ProjeksID         *int64                        `json:"projeks_id,omitempty"`
	TipeID            *int64                        `json:"tipe_id,omitempty"`
	KavlingDipesan    string                        `json:"kavling_dipesan"`
	KelebihanTanah    float64                       `json:"kelebihan_tanah"`
	HargaPerMeter     int64                         `json:"harga_per_meter"`
	SkemaPembayaranID *int64                        `json:"skema_pembayaran_id,omitempty"`
	Diskon            string                        `json:"diskon"`
	TipeDiskon        calculations.DiscountKind     `json:"tipe_diskon"`
	DP                float64                       `json:"dp"`
	Harga             int64                         `json:"harga"`
	DiscountAmount    int64                         `json:"diskon_amount"`
	GrandTotal        int64                         `json:"grand_total"`
	DPAmount          int64                         `json:"dp_amount"`
	SisaPembayaran    int64                         `json:"sisa_pembayaran"`
	Schedule          []calculations.InstallmentRow `json:"jadwal_pembayaran"`
	CreatedAt         time.Time                     `json:"created_at"`
	UpdatedAt         time.Time                     `json:"updated_at"`
}

// ApplyRequest переносит поля payload в запись
func (p *Penjualan) ApplyRequest(r *PenjualanRequest) {
	p.NoTransaksi = r.NoTransaksi
	p.KonsumenID = r.KonsumenID
	p.CreatedID = r.CreatedID
	p.ProjeksID = r.ProjeksID
	p.TipeID = r.TipeID
	p.KavlingDipesan = strings.TrimSpace(r.KavlingDipesan)
	p.KelebihanTanah = 0
	if r.KelebihanTanah != nil {
		p.KelebihanTanah = *r.KelebihanTanah
	}
	p.HargaPerMeter = 0
	if r.HargaPerMeter != nil {
		p.HargaPerMeter = *r.HargaPerMeter
	}
	p.SkemaPembayaranID = r.SkemaPembayaranID
	p.Diskon = r.Diskon.String()
	p.TipeDiskon = r.TipeDiskon
}

// ApplyBreakdown сохраняет серверный расчет
func (p *Penjualan) ApplyBreakdown(b *calculations.PriceBreakdown) {
	p.DP = b.DPPercent
	p.Harga = b.Subtotal
	p.DiscountAmount = b.DiscountAmount
	p.GrandTotal = b.Total
	p.DPAmount = b.DPAmount
	p.SisaPembayaran = b.RemainingBalance
	p.Schedule = b.Schedule
}
