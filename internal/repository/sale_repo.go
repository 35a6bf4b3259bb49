package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/guilhermehba/estoque-ferro-velho/internal/dto"
	"github.com/guilhermehba/estoque-ferro-velho/internal/model"
)

// SaleRepository is the data access contract for sale records.
type SaleRepository interface {
	List(ctx context.Context, f dto.RecordFilter) ([]model.Sale, error) // date desc, insertion order within a date
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error)

	CreateTx(tx *gorm.DB, s *model.Sale) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	DB() *gorm.DB
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) h(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *saleRepo) List(ctx context.Context, f dto.RecordFilter) ([]model.Sale, error) {
	var sales []model.Sale
	q := applyRecordFilter(r.db.WithContext(ctx).Model(&model.Sale{}), f)
	err := q.Order("date DESC, created_at ASC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	var s model.Sale
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *saleRepo) CreateTx(tx *gorm.DB, s *model.Sale) error {
	return r.h(tx).Create(s).Error
}

func (r *saleRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return r.h(tx).Delete(&model.Sale{}, "id = ?", id).Error
}

func (r *saleRepo) DB() *gorm.DB { return r.db }
