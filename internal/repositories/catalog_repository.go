package repositories

import (
	"context"

	"github.com/rumahkita/penjualan-pricing/internal/models"
)

// CatalogRepository - справочник проектов, типов юнитов и схем оплаты
type CatalogRepository interface {
	GetUnitType(ctx context.Context, id int64) (*models.UnitType, error)
	ListUnitTypes(ctx context.Context, projectID int64) ([]models.UnitType, error)
	GetScheme(ctx context.Context, id int64) (*models.PaymentScheme, error)
	ListSchemes(ctx context.Context) ([]models.PaymentScheme, error)
}
