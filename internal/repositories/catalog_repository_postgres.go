package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rumahkita/penjualan-pricing/internal/models"
	"github.com/rumahkita/penjualan-pricing/internal/scheme"
)

type CatalogRepositoryPostgres struct {
	DB *pgxpool.Pool
}

func NewCatalogRepositoryPostgres(db *pgxpool.Pool) *CatalogRepositoryPostgres {
	return &CatalogRepositoryPostgres{DB: db}
}

const unitTypeColumns = `id, projeks_id, nama, harga, luas_tanah, luas_bangunan`

func scanUnitType(row pgx.Row) (*models.UnitType, error) {
	var u models.UnitType
	if err := row.Scan(&u.ID, &u.ProjectID, &u.Name, &u.BasePrice, &u.LandArea, &u.BuildingArea); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUnitType загружает тип юнита по id
func (r *CatalogRepositoryPostgres) GetUnitType(ctx context.Context, id int64) (*models.UnitType, error) {
	query := `SELECT ` + unitTypeColumns + ` FROM tipe WHERE id = $1`
	u, err := scanUnitType(r.DB.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("memuat tipe %d: %w", id, err)
	}
	return u, nil
}

// ListUnitTypes возвращает типы юнитов проекта
func (r *CatalogRepositoryPostgres) ListUnitTypes(ctx context.Context, projectID int64) ([]models.UnitType, error) {
	query := `SELECT ` + unitTypeColumns + ` FROM tipe WHERE projeks_id = $1 ORDER BY id`
	rows, err := r.DB.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("memuat tipe proyek %d: %w", projectID, err)
	}
	defer rows.Close()

	out := make([]models.UnitType, 0)
	for rows.Next() {
		u, err := scanUnitType(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, rows.Err()
}

// Kind резолвится один раз здесь: по коду, если он задан, иначе по имени
func scanScheme(row pgx.Row) (*models.PaymentScheme, error) {
	var (
		s    models.PaymentScheme
		code string
	)
	if err := row.Scan(&s.ID, &s.Name, &code, &s.PriceOverride); err != nil {
		return nil, err
	}
	kind, err := scheme.ParseCode(code)
	if err != nil || code == "" {
		kind = scheme.FromLegacyName(s.Name)
	}
	s.Kind = kind
	return &s, nil
}

// GetScheme загружает схему оплаты по id
func (r *CatalogRepositoryPostgres) GetScheme(ctx context.Context, id int64) (*models.PaymentScheme, error) {
	query := `SELECT id, nama, COALESCE(kode, ''), harga FROM skema_pembayaran WHERE id = $1`
	s, err := scanScheme(r.DB.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("memuat skema pembayaran %d: %w", id, err)
	}
	return s, nil
}

// ListSchemes возвращает все схемы оплаты
func (r *CatalogRepositoryPostgres) ListSchemes(ctx context.Context) ([]models.PaymentScheme, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, nama, COALESCE(kode, ''), harga FROM skema_pembayaran ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("memuat skema pembayaran: %w", err)
	}
	defer rows.Close()

	out := make([]models.PaymentScheme, 0)
	for rows.Next() {
		s, err := scanScheme(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}
