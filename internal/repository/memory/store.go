// Package memory is the in-process record store used when no database is
// configured ("mock mode"). It satisfies the same repository contracts as the
// GORM backend: missing records come back as gorm.ErrRecordNotFound and date
// filters apply the same YYYY-MM prefix rule. State is process-local,
// single-writer (one mutex) and non-durable.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/guilhermehba/estoque-ferro-velho/internal/dto"
	"github.com/guilhermehba/estoque-ferro-velho/internal/model"
	"github.com/guilhermehba/estoque-ferro-velho/internal/repository"
)

// Store holds all in-memory tables behind one mutex.
type Store struct {
	mu            sync.RWMutex
	stock         map[uuid.UUID]model.StockItem
	purchases     []model.Purchase // insertion order
	purchaseItems map[uuid.UUID][]model.PurchaseItem
	sales         []model.Sale // insertion order
	users         map[uuid.UUID]model.User
}

func NewStore() *Store {
	return &Store{
		stock:         make(map[uuid.UUID]model.StockItem),
		purchaseItems: make(map[uuid.UUID][]model.PurchaseItem),
		users:         make(map[uuid.UUID]model.User),
	}
}

func (s *Store) Stock() repository.StockRepository       { return &stockRepo{s: s} }
func (s *Store) Purchases() repository.PurchaseRepository { return &purchaseRepo{s: s} }
func (s *Store) Sales() repository.SaleRepository         { return &saleRepo{s: s} }
func (s *Store) Users() repository.UserRepository         { return &userRepo{s: s} }

// matchRecord applies the shared date/payment filter semantics.
func matchRecord(date, paymentType string, f dto.RecordFilter) bool {
	if f.Date != "" {
		if repository.IsYearMonth(f.Date) {
			if !strings.HasPrefix(date, f.Date) {
				return false
			}
		} else if date != f.Date {
			return false
		}
	}
	if f.PaymentType != "" && paymentType != f.PaymentType {
		return false
	}
	return true
}

// ─── Stock ──────────────────────────────────────────────────────────────────

type stockRepo struct{ s *Store }

func (r *stockRepo) List(_ context.Context) ([]model.StockItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	items := make([]model.StockItem, 0, len(r.s.stock))
	for _, item := range r.s.stock {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (r *stockRepo) FindByID(_ context.Context, id uuid.UUID) (*model.StockItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	item, ok := r.s.stock[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &item, nil
}

func (r *stockRepo) FindByName(_ context.Context, name string) (*model.StockItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, item := range r.s.stock {
		if item.Name == name {
			found := item
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// The memory store has a single view of the data, so Tx reads are the plain
// reads — every write is immediately visible under the store mutex.
func (r *stockRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.StockItem, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stockRepo) FindByNameTx(_ *gorm.DB, name string) (*model.StockItem, error) {
	return r.FindByName(context.Background(), name)
}

func (r *stockRepo) CreateTx(_ *gorm.DB, item *model.StockItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	r.s.stock[item.ID] = *item
	return nil
}

func (r *stockRepo) UpdateTx(_ *gorm.DB, item *model.StockItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.stock[item.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	item.UpdatedAt = time.Now()
	r.s.stock[item.ID] = *item
	return nil
}

func (r *stockRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.stock, id)
	return nil
}

func (r *stockRepo) DB() *gorm.DB { return nil }

// ─── Purchases ──────────────────────────────────────────────────────────────

type purchaseRepo struct{ s *Store }

func (r *purchaseRepo) List(_ context.Context, f dto.RecordFilter) ([]model.Purchase, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.Purchase
	for _, p := range r.s.purchases {
		if matchRecord(p.Date, p.PaymentType, f) {
			out = append(out, p)
		}
	}
	// date desc; stable keeps insertion order within a date
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (r *purchaseRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Purchase, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.purchases {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *purchaseRepo) ListItems(_ context.Context, purchaseID uuid.UUID) ([]model.PurchaseItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]model.PurchaseItem(nil), r.s.purchaseItems[purchaseID]...), nil
}

func (r *purchaseRepo) CreateTx(_ *gorm.DB, p *model.Purchase) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	for i := range p.Items {
		if p.Items[i].ID == uuid.Nil {
			p.Items[i].ID = uuid.New()
		}
		p.Items[i].PurchaseID = p.ID
	}
	header := *p
	header.Items = nil
	r.s.purchases = append(r.s.purchases, header)
	r.s.purchaseItems[p.ID] = append([]model.PurchaseItem(nil), p.Items...)
	return nil
}

func (r *purchaseRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.purchases[:0]
	for _, p := range r.s.purchases {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.s.purchases = kept
	delete(r.s.purchaseItems, id)
	return nil
}

func (r *purchaseRepo) DB() *gorm.DB { return nil }

// ─── Sales ──────────────────────────────────────────────────────────────────

type saleRepo struct{ s *Store }

func (r *saleRepo) List(_ context.Context, f dto.RecordFilter) ([]model.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.Sale
	for _, sale := range r.s.sales {
		if matchRecord(sale.Date, sale.PaymentType, f) {
			out = append(out, sale)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (r *saleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, sale := range r.s.sales {
		if sale.ID == id {
			found := sale
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *saleRepo) CreateTx(_ *gorm.DB, sale *model.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = time.Now()
	}
	r.s.sales = append(r.s.sales, *sale)
	return nil
}

func (r *saleRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.sales[:0]
	for _, sale := range r.s.sales {
		if sale.ID != id {
			kept = append(kept, sale)
		}
	}
	r.s.sales = kept
	return nil
}

func (r *saleRepo) DB() *gorm.DB { return nil }

// ─── Users ──────────────────────────────────────────────────────────────────

type userRepo struct{ s *Store }

func (r *userRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email && u.Active {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *userRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *userRepo) Create(_ context.Context, u *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.s.users[u.ID] = *u
	return nil
}
