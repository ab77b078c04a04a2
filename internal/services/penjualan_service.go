package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/rumahkita/penjualan-pricing/internal/metrics"
	"github.com/rumahkita/penjualan-pricing/internal/models"
	"github.com/rumahkita/penjualan-pricing/internal/repositories"
	"github.com/rumahkita/penjualan-pricing/internal/tracing"
	"github.com/rumahkita/penjualan-pricing/internal/validators"
)

const (
	opCreate = "create"
	opUpdate = "update"
)

// PenjualanService сохраняет транзакции продажи.
// Итоги и график всегда пересчитываются на сервере.
type PenjualanService struct {
	quotes *QuoteService
	repo   repositories.PenjualanRepository
}

func NewPenjualanService(quotes *QuoteService, repo repositories.PenjualanRepository) *PenjualanService {
	return &PenjualanService{quotes: quotes, repo: repo}
}

// Create проверяет payload, пересчитывает цену и сохраняет новую транзакцию
func (s *PenjualanService) Create(ctx context.Context, req *models.PenjualanRequest) (*models.Penjualan, error) {
	ctx, span := tracing.Tracer.Start(ctx, "penjualan.create")
	defer span.End()

	p := &models.Penjualan{}
	if err := s.prepare(ctx, opCreate, p, req); err != nil {
		span.RecordError(err)
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		metrics.PenjualanWrites.WithLabelValues(opCreate, "error").Inc()
		span.RecordError(err)
		return nil, fmt.Errorf("menyimpan penjualan: %w", err)
	}

	metrics.PenjualanWrites.WithLabelValues(opCreate, "success").Inc()
	span.SetAttributes(attribute.Int64("penjualan_id", p.ID))
	slog.Info("penjualan dibuat", "id", p.ID, "no_transaksi", p.NoTransaksi, "grand_total", p.GrandTotal)
	return p, nil
}

// Update пересчитывает и перезаписывает существующую транзакцию
func (s *PenjualanService) Update(ctx context.Context, id int64, req *models.PenjualanRequest) (*models.Penjualan, error) {
	ctx, span := tracing.Tracer.Start(ctx, "penjualan.update")
	defer span.End()
	span.SetAttributes(attribute.Int64("penjualan_id", id))

	p, err := s.repo.Get(ctx, id)
	if err != nil {
		metrics.PenjualanWrites.WithLabelValues(opUpdate, statusFor(err)).Inc()
		return nil, err
	}
	if err := s.prepare(ctx, opUpdate, p, req); err != nil {
		span.RecordError(err)
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		metrics.PenjualanWrites.WithLabelValues(opUpdate, statusFor(err)).Inc()
		span.RecordError(err)
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("memperbarui penjualan: %w", err)
	}

	metrics.PenjualanWrites.WithLabelValues(opUpdate, "success").Inc()
	slog.Info("penjualan diperbarui", "id", p.ID, "grand_total", p.GrandTotal)
	return p, nil
}

// Get возвращает сохраненную транзакцию
func (s *PenjualanService) Get(ctx context.Context, id int64) (*models.Penjualan, error) {
	return s.repo.Get(ctx, id)
}

func (s *PenjualanService) prepare(ctx context.Context, op string, p *models.Penjualan, req *models.PenjualanRequest) error {
	errs := validators.ValidateStruct(req)

	quote, err := s.quotes.QuoteStrict(ctx, req.QuoteRequest())
	if err != nil {
		var verrs validators.ValidationErrors
		if !errors.As(err, &verrs) {
			metrics.PenjualanWrites.WithLabelValues(op, "error").Inc()
			return err
		}
		errs = append(errs, verrs...)
	}
	if len(errs) > 0 {
		metrics.PenjualanWrites.WithLabelValues(op, "validation_error").Inc()
		return errs
	}

	if err := s.quotes.Reconcile(quote.Breakdown, req.GrandTotal, req.DPAmount); err != nil {
		var rerr *ReconcileError
		if errors.As(err, &rerr) {
			for _, m := range rerr.Mismatches {
				metrics.ReconciliationMismatches.WithLabelValues(op, m.Field).Inc()
			}
		}
		metrics.PenjualanWrites.WithLabelValues(op, "mismatch").Inc()
		slog.Warn("total klien tidak sesuai", "operation", op, "error", err)
		return err
	}

	p.ApplyRequest(req)
	p.ApplyBreakdown(quote.Breakdown)
	return nil
}

func statusFor(err error) string {
	if errors.Is(err, repositories.ErrNotFound) {
		return "not_found"
	}
	return "error"
}
