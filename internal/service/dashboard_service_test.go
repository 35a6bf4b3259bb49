package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/guilhermehba/estoque-ferro-velho/internal/dto"
	"github.com/guilhermehba/estoque-ferro-velho/internal/model"
	"github.com/guilhermehba/estoque-ferro-velho/internal/repository/memory"
	"github.com/guilhermehba/estoque-ferro-velho/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummary(t *testing.T) {
	store := memory.NewStore()
	stockSvc := service.NewStockService(store.Stock())
	purchaseSvc := service.NewPurchaseService(store.Purchases(), stockSvc)
	saleSvc := service.NewSaleService(store.Sales(), store.Stock(), stockSvc)
	cashflowSvc := service.NewCashflowService(store.Purchases(), store.Sales())
	svc := service.NewDashboardService(store.Stock(), store.Purchases(), store.Sales(), cashflowSvc)
	ctx := context.Background()

	today := time.Now().Format("2006-01-02")

	_, err := purchaseSvc.Create(ctx, nil, dto.CreatePurchaseRequest{
		Date:        today,
		PaymentType: model.PaymentCash,
		Items: []dto.PurchaseItemRequest{
			{ItemName: "Iron", Weight: dec("50"), PricePerKg: dec("2.5")},
		},
	})
	require.NoError(t, err)

	// an old purchase stays out of today's totals
	_, err = purchaseSvc.Create(ctx, nil, dto.CreatePurchaseRequest{
		Date:        "2020-01-01",
		PaymentType: model.PaymentCash,
		Items: []dto.PurchaseItemRequest{
			{ItemName: "Copper", Weight: dec("10"), PricePerKg: dec("35")},
		},
	})
	require.NoError(t, err)

	stock, err := stockSvc.List(ctx)
	require.NoError(t, err)
	ironID := stock.Data[1].ID // alphabetical: Copper, Iron

	_, err = saleSvc.Create(ctx, nil, dto.CreateSaleRequest{
		Date:        today,
		PaymentType: model.PaymentCash,
		StockItemID: ironID,
		Weight:      dec("20"),
		PricePerKg:  dec("4"),
	})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.StockItemCount)
	assert.True(t, summary.StockTotalWeight.Equal(dec("40"))) // 30 iron + 10 copper
	assert.True(t, summary.TodayPurchases.Equal(dec("125")))
	assert.True(t, summary.TodaySales.Equal(dec("80")))
	// today: cash sale 80 in, no purchases today except the 125 cash one
	assert.True(t, summary.TodayCashflow.Cashflow.Equal(dec("-45"))) // 80 - 125
}
