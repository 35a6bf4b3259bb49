package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/guilhermehba/estoque-ferro-velho/internal/dto"
	"github.com/guilhermehba/estoque-ferro-velho/internal/model"
	"github.com/guilhermehba/estoque-ferro-velho/internal/repository"
)

// StockService is the only mutation entry point into the stock ledger.
// One aggregate per material name: AddToStock blends purchases into the
// weighted-average price, RemoveFromStock decrements at the current average.
//
// The Tx variants run inside a caller-owned transaction — the purchase and
// sale services use them so record write + ledger update commit together.
type StockService interface {
	List(ctx context.Context) (*dto.StockListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.StockItemResponse, error)

	AddToStock(ctx context.Context, name string, weight, pricePerKg decimal.Decimal) (*model.StockItem, error)
	RemoveFromStock(ctx context.Context, id uuid.UUID, weight decimal.Decimal) (*model.StockItem, error)

	AddToStockTx(ctx context.Context, tx *gorm.DB, name string, weight, pricePerKg decimal.Decimal) (*model.StockItem, error)
	RemoveFromStockTx(ctx context.Context, tx *gorm.DB, id uuid.UUID, weight decimal.Decimal) (*model.StockItem, error)
}

type stockService struct {
	repo repository.StockRepository
}

func NewStockService(repo repository.StockRepository) StockService {
	return &stockService{repo: repo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (in-memory store mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *stockService) List(ctx context.Context) (*dto.StockListResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.StockListResponse{
		Data:        make([]dto.StockItemResponse, 0, len(items)),
		TotalWeight: decimal.Zero,
		TotalValue:  decimal.Zero,
	}
	for _, item := range items {
		resp.Data = append(resp.Data, *stockItemToResponse(&item))
		resp.TotalWeight = resp.TotalWeight.Add(item.TotalWeight)
		resp.TotalValue = resp.TotalValue.Add(item.TotalValue)
	}
	return resp, nil
}

func (s *stockService) GetByID(ctx context.Context, id uuid.UUID) (*dto.StockItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("stock item %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return stockItemToResponse(item), nil
}

func (s *stockService) AddToStock(ctx context.Context, name string, weight, pricePerKg decimal.Decimal) (*model.StockItem, error) {
	return s.AddToStockTx(ctx, nil, name, weight, pricePerKg)
}

// AddToStockTx blends weight at pricePerKg into the aggregate for name,
// creating it on first purchase of a material:
//
//	newWeight = oldWeight + weight
//	newValue  = oldValue + weight*pricePerKg
//	newAvg    = newValue / newWeight
func (s *stockService) AddToStockTx(ctx context.Context, tx *gorm.DB, name string, weight, pricePerKg decimal.Decimal) (*model.StockItem, error) {
	if name == "" || !weight.IsPositive() || !pricePerKg.IsPositive() {
		return nil, fmt.Errorf("%w: stock entry requires a name, positive weight and positive price", ErrValidation)
	}

	// Read through the tx handle: within one purchase a later line of the
	// same material must see the earlier line's uncommitted write.
	existing, err := s.repo.FindByNameTx(tx, name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing != nil {
		newWeight := existing.TotalWeight.Add(weight)
		newValue := existing.TotalValue.Add(weight.Mul(pricePerKg))
		existing.TotalWeight = newWeight
		existing.TotalValue = newValue
		existing.AveragePricePerKg = newValue.Div(newWeight)
		existing.EntryCount++
		existing.UpdatedAt = time.Now()
		if err := s.repo.UpdateTx(tx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	item := &model.StockItem{
		Name:              name,
		TotalWeight:       weight,
		EntryCount:        1,
		AveragePricePerKg: pricePerKg,
		TotalValue:        weight.Mul(pricePerKg),
	}
	if err := s.repo.CreateTx(tx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *stockService) RemoveFromStock(ctx context.Context, id uuid.UUID, weight decimal.Decimal) (*model.StockItem, error) {
	return s.RemoveFromStockTx(ctx, nil, id, weight)
}

// RemoveFromStockTx decrements weight from the aggregate. Value is reduced at
// the current average price — the average itself never changes on removal.
// Hitting exactly zero weight deletes the aggregate and returns (nil, nil).
func (s *stockService) RemoveFromStockTx(ctx context.Context, tx *gorm.DB, id uuid.UUID, weight decimal.Decimal) (*model.StockItem, error) {
	if !weight.IsPositive() {
		return nil, fmt.Errorf("%w: removal weight must be positive", ErrValidation)
	}

	item, err := s.repo.FindByIDTx(tx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("stock item %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	if weight.GreaterThan(item.TotalWeight) {
		return nil, fmt.Errorf("%w: %s has %s kg, requested %s kg",
			ErrInsufficientStock, item.Name, item.TotalWeight, weight)
	}

	newWeight := item.TotalWeight.Sub(weight)
	if newWeight.IsZero() {
		if err := s.repo.DeleteTx(tx, id); err != nil {
			return nil, err
		}
		return nil, nil
	}

	item.TotalWeight = newWeight
	item.TotalValue = item.TotalValue.Sub(weight.Mul(item.AveragePricePerKg))
	item.UpdatedAt = time.Now()
	if err := s.repo.UpdateTx(tx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func stockItemToResponse(item *model.StockItem) *dto.StockItemResponse {
	return &dto.StockItemResponse{
		ID:                item.ID.String(),
		Name:              item.Name,
		TotalWeight:       item.TotalWeight,
		EntryCount:        item.EntryCount,
		AveragePricePerKg: item.AveragePricePerKg,
		TotalValue:        item.TotalValue,
		CreatedAt:         item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         item.UpdatedAt.Format(time.RFC3339),
	}
}
