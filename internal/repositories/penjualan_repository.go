package repositories

import (
	"context"

	"github.com/rumahkita/penjualan-pricing/internal/models"
)

// PenjualanRepository хранит транзакции продажи
type PenjualanRepository interface {
	Create(ctx context.Context, p *models.Penjualan) error
	Update(ctx context.Context, p *models.Penjualan) error
	Get(ctx context.Context, id int64) (*models.Penjualan, error)
}
