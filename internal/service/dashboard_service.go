package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guilhermehba/estoque-ferro-velho/internal/dto"
	"github.com/guilhermehba/estoque-ferro-velho/internal/repository"
)

// DashboardService assembles the front-page summary: current stock position
// plus today's purchase/sale totals and drawer balance.
type DashboardService interface {
	Summary(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	stock     repository.StockRepository
	purchases repository.PurchaseRepository
	sales     repository.SaleRepository
	cashflow  CashflowService
}

func NewDashboardService(
	stock repository.StockRepository,
	purchases repository.PurchaseRepository,
	sales repository.SaleRepository,
	cashflow CashflowService,
) DashboardService {
	return &dashboardService{stock: stock, purchases: purchases, sales: sales, cashflow: cashflow}
}

func (s *dashboardService) Summary(ctx context.Context) (*dto.DashboardResponse, error) {
	items, err := s.stock.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		StockItemCount:   len(items),
		StockTotalWeight: decimal.Zero,
		StockTotalValue:  decimal.Zero,
		TodayPurchases:   decimal.Zero,
		TodaySales:       decimal.Zero,
	}
	for _, item := range items {
		resp.StockTotalWeight = resp.StockTotalWeight.Add(item.TotalWeight)
		resp.StockTotalValue = resp.StockTotalValue.Add(item.TotalValue)
	}

	today := dto.RecordFilter{Date: time.Now().Format("2006-01-02")}
	purchases, err := s.purchases.List(ctx, today)
	if err != nil {
		return nil, err
	}
	for _, p := range purchases {
		resp.TodayPurchases = resp.TodayPurchases.Add(p.TotalValue)
	}

	sales, err := s.sales.List(ctx, today)
	if err != nil {
		return nil, err
	}
	for _, sale := range sales {
		resp.TodaySales = resp.TodaySales.Add(sale.TotalValue)
	}

	summary, err := s.cashflow.Calculate(ctx, today)
	if err != nil {
		return nil, err
	}
	resp.TodayCashflow = *summary
	return resp, nil
}
