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

type PurchaseService interface {
	Create(ctx context.Context, userID *uuid.UUID, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error)
	List(ctx context.Context, f dto.RecordFilter) (*dto.PurchaseListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PurchaseResponse, error)
	GetItems(ctx context.Context, id uuid.UUID) ([]dto.PurchaseItemResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type purchaseService struct {
	repo  repository.PurchaseRepository
	stock StockService
}

func NewPurchaseService(repo repository.PurchaseRepository, stock StockService) PurchaseService {
	return &purchaseService{repo: repo, stock: stock}
}

// Create records a purchase and feeds every line item into the stock ledger.
// Line items with an empty name or non-positive weight/price are dropped;
// the purchase fails only when nothing survives the filter. Header totals are
// summed over the surviving items. Header+items persist and the ledger updates
// inside one transaction, so a failed ledger write rolls the purchase back.
func (s *purchaseService) Create(ctx context.Context, userID *uuid.UUID, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	valid := make([]dto.PurchaseItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		if item.ItemName == "" || !item.Weight.IsPositive() || !item.PricePerKg.IsPositive() {
			continue
		}
		valid = append(valid, item)
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("%w: no valid items", ErrValidation)
	}

	purchase := model.Purchase{
		Date:        req.Date,
		PaymentType: req.PaymentType,
		TotalWeight: decimal.Zero,
		TotalValue:  decimal.Zero,
		UserID:      userID,
	}
	for _, item := range valid {
		lineValue := item.Weight.Mul(item.PricePerKg)
		purchase.Items = append(purchase.Items, model.PurchaseItem{
			ItemName:   item.ItemName,
			Weight:     item.Weight,
			PricePerKg: item.PricePerKg,
			TotalValue: lineValue,
		})
		purchase.TotalWeight = purchase.TotalWeight.Add(item.Weight)
		purchase.TotalValue = purchase.TotalValue.Add(lineValue)
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, &purchase); err != nil {
			return err
		}
		for _, item := range purchase.Items {
			if _, err := s.stock.AddToStockTx(ctx, tx, item.ItemName, item.Weight, item.PricePerKg); err != nil {
				return fmt.Errorf("updating stock for %s: %w", item.ItemName, err)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return purchaseToResponse(&purchase, purchase.Items), nil
}

func (s *purchaseService) List(ctx context.Context, f dto.RecordFilter) (*dto.PurchaseListResponse, error) {
	purchases, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	resp := &dto.PurchaseListResponse{Data: make([]dto.PurchaseResponse, 0, len(purchases)), Total: len(purchases)}
	for _, p := range purchases {
		resp.Data = append(resp.Data, *purchaseToResponse(&p, nil))
	}
	return resp, nil
}

func (s *purchaseService) GetByID(ctx context.Context, id uuid.UUID) (*dto.PurchaseResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("purchase %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	items, err := s.repo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return purchaseToResponse(p, items), nil
}

func (s *purchaseService) GetItems(ctx context.Context, id uuid.UUID) ([]dto.PurchaseItemResponse, error) {
	items, err := s.repo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, purchaseItemToResponse(&item))
	}
	return out, nil
}

// Delete removes the purchase header and its line items. Stock previously
// added by this purchase is left in place: material bought is physically in
// the yard regardless of the record, so deletion only corrects the books.
func (s *purchaseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("purchase %s: %w", id, ErrNotFound)
		}
		return err
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.DeleteTx(tx, id)
	})
}

func purchaseItemToResponse(item *model.PurchaseItem) dto.PurchaseItemResponse {
	return dto.PurchaseItemResponse{
		ID:         item.ID.String(),
		ItemName:   item.ItemName,
		Weight:     item.Weight,
		PricePerKg: item.PricePerKg,
		TotalValue: item.TotalValue,
	}
}

func purchaseToResponse(p *model.Purchase, items []model.PurchaseItem) *dto.PurchaseResponse {
	resp := &dto.PurchaseResponse{
		ID:          p.ID.String(),
		Date:        p.Date,
		PaymentType: p.PaymentType,
		TotalWeight: p.TotalWeight,
		TotalValue:  p.TotalValue,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, purchaseItemToResponse(&item))
	}
	return resp
}
