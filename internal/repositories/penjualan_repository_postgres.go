package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rumahkita/penjualan-pricing/internal/calculations"
	"github.com/rumahkita/penjualan-pricing/internal/models"
)

type PenjualanRepositoryPostgres struct {
	DB *pgxpool.Pool
}

func NewPenjualanRepositoryPostgres(db *pgxpool.Pool) *PenjualanRepositoryPostgres {
	return &PenjualanRepositoryPostgres{DB: db}
}

// Create вставляет транзакцию и заполняет ID и временные метки
func (r *PenjualanRepositoryPostgres) Create(ctx context.Context, p *models.Penjualan) error {
	schedule, err := json.Marshal(p.Schedule)
	if err != nil {
		return fmt.Errorf("jadwal pembayaran: %w", err)
	}
	query := `
		INSERT INTO penjualan (
			no_transaksi, konsumen_id, created_id, projeks_id, tipe_id, kavling_dipesan,
			kelebihan_tanah, harga_per_meter, skema_pembayaran_id, diskon, tipe_diskon, dp,
			harga, diskon_amount, grand_total, dp_amount, sisa_pembayaran, jadwal_pembayaran,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $19)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return r.DB.QueryRow(ctx, query,
		p.NoTransaksi, p.KonsumenID, p.CreatedID, p.ProjeksID, p.TipeID, p.KavlingDipesan,
		p.KelebihanTanah, p.HargaPerMeter, p.SkemaPembayaranID, p.Diskon, string(p.TipeDiskon), p.DP,
		p.Harga, p.DiscountAmount, p.GrandTotal, p.DPAmount, p.SisaPembayaran, schedule,
		now,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// Update перезаписывает ввод и серверный расчет транзакции
func (r *PenjualanRepositoryPostgres) Update(ctx context.Context, p *models.Penjualan) error {
	schedule, err := json.Marshal(p.Schedule)
	if err != nil {
		return fmt.Errorf("jadwal pembayaran: %w", err)
	}
	query := `
		UPDATE penjualan SET
			no_transaksi = $2, konsumen_id = $3, created_id = $4, projeks_id = $5, tipe_id = $6,
			kavling_dipesan = $7, kelebihan_tanah = $8, harga_per_meter = $9,
			skema_pembayaran_id = $10, diskon = $11, tipe_diskon = $12, dp = $13,
			harga = $14, diskon_amount = $15, grand_total = $16, dp_amount = $17,
			sisa_pembayaran = $18, jadwal_pembayaran = $19, updated_at = $20
		WHERE id = $1
		RETURNING created_at, updated_at
	`
	err = r.DB.QueryRow(ctx, query,
		p.ID, p.NoTransaksi, p.KonsumenID, p.CreatedID, p.ProjeksID, p.TipeID,
		p.KavlingDipesan, p.KelebihanTanah, p.HargaPerMeter,
		p.SkemaPembayaranID, p.Diskon, string(p.TipeDiskon), p.DP,
		p.Harga, p.DiscountAmount, p.GrandTotal, p.DPAmount,
		p.SisaPembayaran, schedule, time.Now(),
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *PenjualanRepositoryPostgres) Get(ctx context.Context, id int64) (*models.Penjualan, error) {
	query := `
		SELECT id, no_transaksi, konsumen_id, created_id, projeks_id, tipe_id, kavling_dipesan,
		       kelebihan_tanah, harga_per_meter, skema_pembayaran_id, diskon, tipe_diskon, dp,
		       harga, diskon_amount, grand_total, dp_amount, sisa_pembayaran, jadwal_pembayaran,
		       created_at, updated_at
		FROM penjualan
		WHERE id = $1
	`
	var (
		p          models.Penjualan
		tipeDiskon string
		schedule   []byte
	)
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.NoTransaksi, &p.KonsumenID, &p.CreatedID, &p.ProjeksID, &p.TipeID, &p.KavlingDipesan,
		&p.KelebihanTanah, &p.HargaPerMeter, &p.SkemaPembayaranID, &p.Diskon, &tipeDiskon, &p.DP,
		&p.Harga, &p.DiscountAmount, &p.GrandTotal, &p.DPAmount, &p.SisaPembayaran, &schedule,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("memuat penjualan %d: %w", id, err)
	}
	p.TipeDiskon = calculations.DiscountKind(tipeDiskon)
	if err := json.Unmarshal(schedule, &p.Schedule); err != nil {
		return nil, fmt.Errorf("jadwal pembayaran penjualan %d: %w", id, err)
	}
	return &p, nil
}
