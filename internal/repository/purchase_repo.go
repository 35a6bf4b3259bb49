package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/guilhermehba/estoque-ferro-velho/internal/dto"
	"github.com/guilhermehba/estoque-ferro-velho/internal/model"
)

// PurchaseRepository is the data access contract for purchase headers and
// their line items. Headers and items are created together in one call so the
// backend can write both in a single statement batch.
type PurchaseRepository interface {
	List(ctx context.Context, f dto.RecordFilter) ([]model.Purchase, error) // date desc, insertion order within a date
	FindByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error)
	ListItems(ctx context.Context, purchaseID uuid.UUID) ([]model.PurchaseItem, error)

	CreateTx(tx *gorm.DB, p *model.Purchase) error // persists header + attached Items
	DeleteTx(tx *gorm.DB, id uuid.UUID) error      // removes items then header

	DB() *gorm.DB
}

type purchaseRepo struct{ db *gorm.DB }

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository { return &purchaseRepo{db: db} }

func (r *purchaseRepo) h(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *purchaseRepo) List(ctx context.Context, f dto.RecordFilter) ([]model.Purchase, error) {
	var purchases []model.Purchase
	q := applyRecordFilter(r.db.WithContext(ctx).Model(&model.Purchase{}), f)
	err := q.Order("date DESC, created_at ASC").Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error) {
	var p model.Purchase
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *purchaseRepo) ListItems(ctx context.Context, purchaseID uuid.UUID) ([]model.PurchaseItem, error) {
	var items []model.PurchaseItem
	err := r.db.WithContext(ctx).Where("purchase_id = ?", purchaseID).Find(&items).Error
	return items, err
}

func (r *purchaseRepo) CreateTx(tx *gorm.DB, p *model.Purchase) error {
	// Items carry no PurchaseID yet; GORM fills the association on create.
	return r.h(tx).Create(p).Error
}

func (r *purchaseRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	db := r.h(tx)
	if err := db.Delete(&model.PurchaseItem{}, "purchase_id = ?", id).Error; err != nil {
		return err
	}
	return db.Delete(&model.Purchase{}, "id = ?", id).Error
}

func (r *purchaseRepo) DB() *gorm.DB { return r.db }
