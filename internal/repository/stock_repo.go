package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/guilhermehba/estoque-ferro-velho/internal/model"
)

// StockRepository is the data access contract for the stock ledger.
// Services depend on this interface, not on the concrete GORM implementation;
// the in-memory store (mock mode) satisfies the same contract.
//
// Missing records are reported as gorm.ErrRecordNotFound by every backend —
// services translate that into their own NotFound kind.
//
// Write methods take a tx handle so the purchase/sale services can run the
// record write and the ledger update inside one transaction boundary. A nil
// tx falls back to the repository's own connection (in-memory mode passes nil).
type StockRepository interface {
	List(ctx context.Context) ([]model.StockItem, error) // sorted by name asc
	FindByID(ctx context.Context, id uuid.UUID) (*model.StockItem, error)
	FindByName(ctx context.Context, name string) (*model.StockItem, error)

	// Tx reads share the caller's connection. Ledger mutations must read
	// through these: a multi-line purchase blends each line against the
	// previous line's uncommitted write, which the base connection cannot
	// see under READ COMMITTED.
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.StockItem, error)
	FindByNameTx(tx *gorm.DB, name string) (*model.StockItem, error)

	CreateTx(tx *gorm.DB, item *model.StockItem) error
	UpdateTx(tx *gorm.DB, item *model.StockItem) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	// The in-memory implementation returns nil.
	DB() *gorm.DB
}

type stockRepo struct{ db *gorm.DB }

func NewStockRepository(db *gorm.DB) StockRepository { return &stockRepo{db: db} }

func (r *stockRepo) h(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *stockRepo) List(ctx context.Context) ([]model.StockItem, error) {
	var items []model.StockItem
	err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *stockRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.StockItem, error) {
	var item model.StockItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *stockRepo) FindByName(ctx context.Context, name string) (*model.StockItem, error) {
	var item model.StockItem
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *stockRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.StockItem, error) {
	var item model.StockItem
	if err := r.h(tx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *stockRepo) FindByNameTx(tx *gorm.DB, name string) (*model.StockItem, error) {
	var item model.StockItem
	if err := r.h(tx).Where("name = ?", name).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *stockRepo) CreateTx(tx *gorm.DB, item *model.StockItem) error {
	return r.h(tx).Create(item).Error
}

func (r *stockRepo) UpdateTx(tx *gorm.DB, item *model.StockItem) error {
	return r.h(tx).Save(item).Error
}

func (r *stockRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return r.h(tx).Delete(&model.StockItem{}, "id = ?", id).Error
}

func (r *stockRepo) DB() *gorm.DB { return r.db }
