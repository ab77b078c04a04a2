package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/rumahkita/penjualan-pricing/internal/models"
	"github.com/rumahkita/penjualan-pricing/internal/scheme"
)

// DefaultSchemes - стандартный список схем оплаты
func DefaultSchemes() []models.PaymentScheme {
	return []models.PaymentScheme{
		{ID: 1, Name: "Cash Keras", Kind: scheme.KindCashKeras},
		{ID: 2, Name: "Cash By progress 2 lantai", Kind: scheme.KindProgress2},
		{ID: 3, Name: "Cash By progress 3 lantai", Kind: scheme.KindProgress3},
		{ID: 4, Name: "Cash Tempo Inhouse 3x", Kind: scheme.KindInhouse3x},
		{ID: 5, Name: "Cash Tempo Inhouse 6x", Kind: scheme.KindInhouse6x},
		{ID: 6, Name: "Cash Tempo Inhouse 12x", Kind: scheme.KindInhouse12x},
		{ID: 7, Name: "KPR", Kind: scheme.KindKPR},
	}
}

// DemoUnitTypes - типы юнитов для локального запуска без базы
func DemoUnitTypes() []models.UnitType {
	return []models.UnitType{
		{ID: 1, ProjectID: 1, Name: "Tipe 36/72", BasePrice: 385_000_000, LandArea: 72, BuildingArea: 36},
		{ID: 2, ProjectID: 1, Name: "Tipe 45/90", BasePrice: 510_000_000, LandArea: 90, BuildingArea: 45},
		{ID: 3, ProjectID: 1, Name: "Tipe 70/120 2 Lantai", BasePrice: 895_000_000, LandArea: 120, BuildingArea: 70},
	}
}

// CatalogRepositoryMemory хранит справочник в памяти
type CatalogRepositoryMemory struct {
	mu        sync.RWMutex
	unitTypes map[int64]models.UnitType
	schemes   map[int64]models.PaymentScheme
}

// NewCatalogRepositoryMemory создает справочник со стандартными схемами
func NewCatalogRepositoryMemory() *CatalogRepositoryMemory {
	r := &CatalogRepositoryMemory{
		unitTypes: make(map[int64]models.UnitType),
		schemes:   make(map[int64]models.PaymentScheme),
	}
	for _, s := range DefaultSchemes() {
		r.schemes[s.ID] = s
	}
	return r
}

// PutUnitType добавляет или заменяет тип юнита
func (r *CatalogRepositoryMemory) PutUnitType(u models.UnitType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unitTypes[u.ID] = u
}

// PutScheme добавляет или заменяет схему оплаты
func (r *CatalogRepositoryMemory) PutScheme(s models.PaymentScheme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemes[s.ID] = s
}

func (r *CatalogRepositoryMemory) GetUnitType(ctx context.Context, id int64) (*models.UnitType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.unitTypes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *CatalogRepositoryMemory) ListUnitTypes(ctx context.Context, projectID int64) ([]models.UnitType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.UnitType, 0)
	for _, u := range r.unitTypes {
		if u.ProjectID == projectID {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CatalogRepositoryMemory) GetScheme(ctx context.Context, id int64) (*models.PaymentScheme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *CatalogRepositoryMemory) ListSchemes(ctx context.Context) ([]models.PaymentScheme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.PaymentScheme, 0, len(r.schemes))
	for _, s := range r.schemes {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
