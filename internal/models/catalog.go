package models

import (
	"github.com/rumahkita/penjualan-pricing/internal/calculations"
	"github.com/rumahkita/penjualan-pricing/internal/scheme"
)

// UnitType - тип юнита в проекте (tipe)
type UnitType struct {
	ID           int64   `json:"id"`
	ProjectID    int64   `json:"projeks_id"`
	Name         string  `json:"nama"`
	BasePrice    int64   `json:"harga"`
	LandArea     float64 `json:"luas_tanah"`
	BuildingArea float64 `json:"luas_bangunan"`
}

// Info возвращает данные юнита для расчета
func (u *UnitType) Info() *calculations.UnitInfo {
	if u == nil {
		return nil
	}
	return &calculations.UnitInfo{BasePrice: u.BasePrice}
}

// PaymentScheme - схема оплаты (skema_pembayaran).
// Kind определяется при загрузке из справочника, не по имени в расчетах.
type PaymentScheme struct {
	ID            int64       `json:"id"`
	Name          string      `json:"nama"`
	Kind          scheme.Kind `json:"kode"`
	PriceOverride *int64      `json:"harga,omitempty"`
}

// Info возвращает данные схемы для расчета
func (s *PaymentScheme) Info() *calculations.SchemeInfo {
	if s == nil {
		return nil
	}
	return &calculations.SchemeInfo{Kind: s.Kind, PriceOverride: s.PriceOverride}
}
