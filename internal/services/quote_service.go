package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rumahkita/penjualan-pricing/internal/calculations"
	"github.com/rumahkita/penjualan-pricing/internal/config"
	"github.com/rumahkita/penjualan-pricing/internal/metrics"
	"github.com/rumahkita/penjualan-pricing/internal/models"
	"github.com/rumahkita/penjualan-pricing/internal/repositories"
	"github.com/rumahkita/penjualan-pricing/internal/scheme"
	"github.com/rumahkita/penjualan-pricing/internal/tracing"
	"github.com/rumahkita/penjualan-pricing/internal/validators"
)

// ErrReconcileMismatch - итоги клиента расходятся с серверным расчетом
var ErrReconcileMismatch = errors.New("total tidak sesuai dengan perhitungan server")

// Mismatch - одно расхождение итога
type Mismatch struct {
	Field     string `json:"field"`
	Displayed int64  `json:"displayed"`
	Computed  int64  `json:"computed"`
}

// ReconcileError перечисляет расхождения; errors.Is(err, ErrReconcileMismatch) == true
type ReconcileError struct {
	Mismatches []Mismatch
}

func (e *ReconcileError) Error() string {
	parts := make([]string, 0, len(e.Mismatches))
	for _, m := range e.Mismatches {
		parts = append(parts, fmt.Sprintf("%s: ditampilkan %d, dihitung %d", m.Field, m.Displayed, m.Computed))
	}
	return ErrReconcileMismatch.Error() + " (" + strings.Join(parts, "; ") + ")"
}

func (e *ReconcileError) Unwrap() error {
	return ErrReconcileMismatch
}

// QuoteResult - разбивка цены вместе со справочными данными
type QuoteResult struct {
	Breakdown *calculations.PriceBreakdown `json:"breakdown"`
	UnitType  *models.UnitType             `json:"tipe,omitempty"`
	Scheme    *models.PaymentScheme        `json:"skema_pembayaran,omitempty"`
	Warnings  []calculations.Adjustment    `json:"warnings,omitempty"`
}

// QuoteService пересчитывает цену по вводу диалога
type QuoteService struct {
	cfg     *config.Config
	catalog repositories.CatalogRepository
}

func NewQuoteService(cfg *config.Config, catalog repositories.CatalogRepository) *QuoteService {
	return &QuoteService{cfg: cfg, catalog: catalog}
}

// Quote считает разбивку. Поправки ввода возвращаются предупреждениями,
// а при STRICT_QUOTES - ошибками валидации.
func (s *QuoteService) Quote(ctx context.Context, req models.QuoteRequest) (*QuoteResult, error) {
	return s.quote(ctx, req, s.cfg.StrictQuotes)
}

// QuoteStrict считает разбивку и отклоняет любой ввод, который пришлось бы поправить
func (s *QuoteService) QuoteStrict(ctx context.Context, req models.QuoteRequest) (*QuoteResult, error) {
	return s.quote(ctx, req, true)
}

func (s *QuoteService) quote(ctx context.Context, req models.QuoteRequest, strict bool) (*QuoteResult, error) {
	ctx, span := tracing.Tracer.Start(ctx, "quote")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("tipe_id", req.TipeID),
		attribute.Int64("skema_pembayaran_id", req.SkemaPembayaranID),
		attribute.Float64("dp", req.DP),
		attribute.Bool("strict", strict),
	)

	var errs validators.ValidationErrors
	if strict {
		errs.Add(validators.CheckExcessArea(s.cfg, req.KelebihanTanah))
		errs.Add(validators.CheckPricePerUnit(s.cfg, req.HargaPerMeter))
		errs.Add(validators.CheckDiscountValue(req.Diskon.String()))
	} else {
		// отрицательные значения обнуляет расчёт и возвращает предупреждением
		errs.Add(validators.CheckExcessAreaLimit(s.cfg, req.KelebihanTanah))
		errs.Add(validators.CheckPricePerUnitLimit(s.cfg, req.HargaPerMeter))
	}

	unit, err := s.loadUnitType(ctx, req.TipeID)
	if err != nil {
		var verr *validators.ValidationError
		if !errors.As(err, &verr) {
			return nil, s.fail(span, "error", err)
		}
		errs.Add(verr)
	}
	if unit != nil {
		errs.Add(validators.CheckBasePrice(s.cfg, unit.BasePrice))
	}

	sch, err := s.loadScheme(ctx, req.SkemaPembayaranID)
	if err != nil {
		var verr *validators.ValidationError
		if !errors.As(err, &verr) {
			return nil, s.fail(span, "error", err)
		}
		errs.Add(verr)
	}

	kind := scheme.KindNone
	if sch != nil {
		kind = sch.Kind
		if sch.PriceOverride != nil {
			errs.Add(validators.CheckBasePrice(s.cfg, *sch.PriceOverride))
		}
	}
	span.SetAttributes(attribute.String("scheme", kind.String()))

	if len(errs) > 0 {
		metrics.QuoteCalculations.WithLabelValues(kind.String(), "validation_error").Inc()
		span.SetAttributes(attribute.String("error", "validation_error"))
		return nil, errs
	}

	breakdown := calculations.Calculate(calculations.PricingInput{
		Scheme:             sch.Info(),
		Unit:               unit.Info(),
		ExcessArea:         req.KelebihanTanah,
		PricePerExcessUnit: req.HargaPerMeter,
		DiscountValue:      req.Diskon.String(),
		DiscountKind:       req.TipeDiskon,
		DPPercent:          req.DP,
	}, calculations.Options{ProgressBasis: calculations.Basis(s.cfg.ProgressBasis)})

	for _, a := range breakdown.Adjustments {
		metrics.CalculationAdjustments.WithLabelValues(kind.String(), a.Field).Inc()
	}

	if strict && len(breakdown.Adjustments) > 0 {
		metrics.QuoteCalculations.WithLabelValues(kind.String(), "rejected").Inc()
		span.SetAttributes(attribute.String("error", "adjustment_rejected"))
		return nil, validators.FromAdjustments(breakdown.Adjustments)
	}

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Int64("post_discount_total", breakdown.Total),
		attribute.Int64("dp_amount", breakdown.DPAmount),
		attribute.Int("schedule_rows", len(breakdown.Schedule)),
	)
	metrics.QuoteCalculations.WithLabelValues(kind.String(), "success").Inc()

	return &QuoteResult{
		Breakdown: breakdown,
		UnitType:  unit,
		Scheme:    sch,
		Warnings:  breakdown.Adjustments,
	}, nil
}

// Reconcile сравнивает итоги, показанные клиенту, с серверным расчетом.
// Непереданные значения не проверяются.
func (s *QuoteService) Reconcile(b *calculations.PriceBreakdown, displayedTotal, displayedDP *int64) error {
	var mismatches []Mismatch
	check := func(field string, displayed *int64, computed int64) {
		if displayed == nil {
			return
		}
		diff := *displayed - computed
		if diff < 0 {
			diff = -diff
		}
		if diff > s.cfg.ReconcileTolerance {
			mismatches = append(mismatches, Mismatch{Field: field, Displayed: *displayed, Computed: computed})
		}
	}
	check("grand_total", displayedTotal, b.Total)
	check("dp_amount", displayedDP, b.DPAmount)

	if len(mismatches) == 0 {
		return nil
	}
	return &ReconcileError{Mismatches: mismatches}
}

func (s *QuoteService) loadUnitType(ctx context.Context, id int64) (*models.UnitType, error) {
	if id <= 0 {
		return nil, nil
	}
	u, err := s.catalog.GetUnitType(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, &validators.ValidationError{Field: "tipe_id", Message: "tipe tidak ditemukan"}
	}
	if err != nil {
		return nil, fmt.Errorf("memuat tipe: %w", err)
	}
	return u, nil
}

func (s *QuoteService) loadScheme(ctx context.Context, id int64) (*models.PaymentScheme, error) {
	if id <= 0 {
		return nil, nil
	}
	sch, err := s.catalog.GetScheme(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, &validators.ValidationError{Field: "skema_pembayaran_id", Message: "skema pembayaran tidak ditemukan"}
	}
	if err != nil {
		return nil, fmt.Errorf("memuat skema pembayaran: %w", err)
	}
	return sch, nil
}

func (s *QuoteService) fail(span trace.Span, status string, err error) error {
	span.SetAttributes(attribute.String("error", status))
	span.RecordError(err)
	metrics.QuoteCalculations.WithLabelValues("unknown", status).Inc()
	slog.Error("perhitungan harga gagal", "error", err)
	return err
}
