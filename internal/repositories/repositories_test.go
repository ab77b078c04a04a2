package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rumahkita/penjualan-pricing/internal/calculations"
	"github.com/rumahkita/penjualan-pricing/internal/models"
	"github.com/rumahkita/penjualan-pricing/internal/scheme"
)

func TestCatalogRepositoryMemory(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepositoryMemory()
	repo.PutUnitType(models.UnitType{ID: 2, ProjectID: 1, Name: "Tipe 45", BasePrice: 450_000_000})
	repo.PutUnitType(models.UnitType{ID: 1, ProjectID: 1, Name: "Tipe 36", BasePrice: 360_000_000})
	repo.PutUnitType(models.UnitType{ID: 3, ProjectID: 9, Name: "Ruko", BasePrice: 900_000_000})

	u, err := repo.GetUnitType(ctx, 1)
	if err != nil || u.BasePrice != 360_000_000 {
		t.Fatalf("GetUnitType(1) = %v, %v", u, err)
	}
	if _, err := repo.GetUnitType(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	list, _ := repo.ListUnitTypes(ctx, 1)
	if len(list) != 2 || list[0].ID != 1 || list[1].ID != 2 {
		t.Errorf("ListUnitTypes(1) = %v", list)
	}
	if list, _ := repo.ListUnitTypes(ctx, 5); list == nil || len(list) != 0 {
		t.Errorf("expected empty non-nil list, got %v", list)
	}

	schemes, _ := repo.ListSchemes(ctx)
	if len(schemes) != len(DefaultSchemes()) {
		t.Fatalf("expected %d seeded schemes, got %d", len(DefaultSchemes()), len(schemes))
	}
	for _, s := range schemes {
		if got := scheme.FromLegacyName(s.Name); got != s.Kind {
			t.Errorf("seed %q: legacy name resolves to %s, kind is %s", s.Name, got, s.Kind)
		}
	}

	s, err := repo.GetScheme(ctx, 7)
	if err != nil || s.Kind != scheme.KindKPR {
		t.Errorf("GetScheme(7) = %v, %v", s, err)
	}
}

type countingCatalog struct {
	CatalogRepository
	unitCalls int
}

func (c *countingCatalog) GetUnitType(ctx context.Context, id int64) (*models.UnitType, error) {
	c.unitCalls++
	return c.CatalogRepository.GetUnitType(ctx, id)
}

func TestCachedCatalogRepository(t *testing.T) {
	ctx := context.Background()
	mem := NewCatalogRepositoryMemory()
	mem.PutUnitType(models.UnitType{ID: 1, ProjectID: 1, Name: "Tipe 36", BasePrice: 360_000_000})
	source := &countingCatalog{CatalogRepository: mem}
	cached := NewCachedCatalogRepository(source, NewMemoryCache(), time.Minute)

	for i := 0; i < 3; i++ {
		u, err := cached.GetUnitType(ctx, 1)
		if err != nil || u.Name != "Tipe 36" {
			t.Fatalf("GetUnitType = %v, %v", u, err)
		}
	}
	if source.unitCalls != 1 {
		t.Errorf("expected one source read, got %d", source.unitCalls)
	}

	t.Run("not found is not cached", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			if _, err := cached.GetUnitType(ctx, 99); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		}
		if source.unitCalls != 3 {
			t.Errorf("expected misses to reach the source, calls = %d", source.unitCalls)
		}
	})

	t.Run("scheme price override survives the cache", func(t *testing.T) {
		override := int64(500_000_000)
		mem.PutScheme(models.PaymentScheme{ID: 10, Name: "Promo", Kind: scheme.KindOther, PriceOverride: &override})
		_, _ = cached.GetScheme(ctx, 10)
		s, err := cached.GetScheme(ctx, 10)
		if err != nil || s.PriceOverride == nil || *s.PriceOverride != override || s.Kind != scheme.KindOther {
			t.Errorf("GetScheme(10) = %+v, %v", s, err)
		}
	})
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, "k", "v", time.Minute)
	_ = c.Set(ctx, "forever", "v", 0)

	if v, ok := c.Get(ctx, "k"); !ok || v != "v" {
		t.Fatalf("Get(k) = %q, %v", v, ok)
	}
	now = now.Add(time.Minute)
	if _, ok := c.Get(ctx, "k"); ok {
		t.Error("expected entry to expire")
	}
	if _, ok := c.Get(ctx, "forever"); !ok {
		t.Error("entry without TTL must not expire")
	}
}

func TestPenjualanRepositoryMemory(t *testing.T) {
	ctx := context.Background()
	repo := NewPenjualanRepositoryMemory()

	p := &models.Penjualan{
		NoTransaksi:    1001,
		KonsumenID:     5,
		KavlingDipesan: "A-12",
		TipeDiskon:     calculations.DiscountFixed,
		GrandTotal:     500_000_000,
		Schedule:       []calculations.InstallmentRow{{Label: "DP", Amount: 150_000_000, Period: "-"}},
	}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID != 1 || p.CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamps, got %+v", p)
	}

	// Изменение исходной записи не должно затрагивать хранилище
	p.Schedule[0].Amount = 1

	got, err := repo.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Schedule[0].Amount != 150_000_000 {
		t.Errorf("stored schedule was aliased: %v", got.Schedule)
	}

	got.GrandTotal = 450_000_000
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	again, _ := repo.Get(ctx, p.ID)
	if again.GrandTotal != 450_000_000 || !again.CreatedAt.Equal(p.CreatedAt) {
		t.Errorf("after update: %+v", again)
	}

	if err := repo.Update(ctx, &models.Penjualan{ID: 77}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.Get(ctx, 77); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
