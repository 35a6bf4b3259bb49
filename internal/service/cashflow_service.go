package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/guilhermehba/estoque-ferro-velho/internal/dto"
	"github.com/guilhermehba/estoque-ferro-velho/internal/model"
	"github.com/guilhermehba/estoque-ferro-velho/internal/repository"
)

// CashflowService derives the unified movements ledger and the cash-drawer
// balance from purchase/sale records. Nothing here is persisted.
type CashflowService interface {
	GetCashflow(ctx context.Context, f dto.RecordFilter) ([]dto.CashflowEntry, error)
	Calculate(ctx context.Context, f dto.RecordFilter) (*dto.CashflowSummary, error)
}

type cashflowService struct {
	purchases repository.PurchaseRepository
	sales     repository.SaleRepository
}

func NewCashflowService(purchases repository.PurchaseRepository, sales repository.SaleRepository) CashflowService {
	return &cashflowService{purchases: purchases, sales: sales}
}

// GetCashflow maps purchases to outflows and sales to inflows, merged and
// sorted by date descending. Within one date the order is stable insertion
// order, purchases first — deterministic across both store backends.
func (s *cashflowService) GetCashflow(ctx context.Context, f dto.RecordFilter) ([]dto.CashflowEntry, error) {
	purchases, err := s.purchases.List(ctx, f)
	if err != nil {
		return nil, err
	}
	sales, err := s.sales.List(ctx, f)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.CashflowEntry, 0, len(purchases)+len(sales))
	for _, p := range purchases {
		entries = append(entries, dto.CashflowEntry{
			ID:          fmt.Sprintf("purchase-%s", p.ID),
			Date:        p.Date,
			Type:        dto.CashflowOutflow,
			Description: fmt.Sprintf("Purchase - %s", p.PaymentType),
			Value:       p.TotalValue,
			PaymentType: p.PaymentType,
		})
	}
	for _, sale := range sales {
		entries = append(entries, dto.CashflowEntry{
			ID:          fmt.Sprintf("sale-%s", sale.ID),
			Date:        sale.Date,
			Type:        dto.CashflowInflow,
			Description: fmt.Sprintf("Sale - %s", sale.ItemName),
			Value:       sale.TotalValue,
			PaymentType: sale.PaymentType,
		})
	}

	// ISO dates compare lexicographically
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date > entries[j].Date })
	return entries, nil
}

// Calculate derives the physical cash-drawer balance:
//
//	salesMoney     — cash sales (money actually entering the drawer)
//	purchasesPix   — instant-transfer purchases (paid outside the drawer,
//	                 added back because totalPurchases subtracts them)
//	totalPurchases — every purchase regardless of payment type
//	cashflow       = salesMoney + purchasesPix - totalPurchases
//
// Cash purchases reduce the balance without a matching inflow term. That is
// the house accounting convention, kept as-is.
func (s *cashflowService) Calculate(ctx context.Context, f dto.RecordFilter) (*dto.CashflowSummary, error) {
	// Only the date narrows the calculation; a payment-type filter on the
	// ledger view must not skew the drawer balance.
	dateOnly := dto.RecordFilter{Date: f.Date}

	purchases, err := s.purchases.List(ctx, dateOnly)
	if err != nil {
		return nil, err
	}
	sales, err := s.sales.List(ctx, dateOnly)
	if err != nil {
		return nil, err
	}

	summary := &dto.CashflowSummary{
		SalesMoney:     decimal.Zero,
		PurchasesPix:   decimal.Zero,
		TotalPurchases: decimal.Zero,
	}
	for _, sale := range sales {
		if sale.PaymentType == model.PaymentCash {
			summary.SalesMoney = summary.SalesMoney.Add(sale.TotalValue)
		}
	}
	for _, p := range purchases {
		if p.PaymentType == model.PaymentInstantTransfer {
			summary.PurchasesPix = summary.PurchasesPix.Add(p.TotalValue)
		}
		summary.TotalPurchases = summary.TotalPurchases.Add(p.TotalValue)
	}
	summary.Cashflow = summary.SalesMoney.Add(summary.PurchasesPix).Sub(summary.TotalPurchases)
	return summary, nil
}
