package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/rumahkita/penjualan-pricing/internal/calculations"
	"github.com/rumahkita/penjualan-pricing/internal/models"
)

// PenjualanRepositoryMemory - хранилище транзакций в памяти
type PenjualanRepositoryMemory struct {
	mu     sync.RWMutex
	nextID int64
	data   map[int64]models.Penjualan
	now    func() time.Time
}

func NewPenjualanRepositoryMemory() *PenjualanRepositoryMemory {
	return &PenjualanRepositoryMemory{
		data: make(map[int64]models.Penjualan),
		now:  time.Now,
	}
}

// Create присваивает id и сохраняет копию записи
func (r *PenjualanRepositoryMemory) Create(ctx context.Context, p *models.Penjualan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	p.ID = r.nextID
	p.CreatedAt = r.now()
	p.UpdatedAt = p.CreatedAt
	r.data[p.ID] = clonePenjualan(p)
	return nil
}

func (r *PenjualanRepositoryMemory) Update(ctx context.Context, p *models.Penjualan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.data[p.ID]
	if !ok {
		return ErrNotFound
	}
	p.CreatedAt = prev.CreatedAt
	p.UpdatedAt = r.now()
	r.data[p.ID] = clonePenjualan(p)
	return nil
}

func (r *PenjualanRepositoryMemory) Get(ctx context.Context, id int64) (*models.Penjualan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.data[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := clonePenjualan(&p)
	return &out, nil
}

func clonePenjualan(p *models.Penjualan) models.Penjualan {
	out := *p
	out.Schedule = append([]calculations.InstallmentRow(nil), p.Schedule...)
	return out
}
