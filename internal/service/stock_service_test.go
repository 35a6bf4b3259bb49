package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/guilhermehba/estoque-ferro-velho/internal/repository/memory"
	"github.com/guilhermehba/estoque-ferro-velho/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newStockService() service.StockService {
	store := memory.NewStore()
	return service.NewStockService(store.Stock())
}

func TestAddToStockCreatesAggregate(t *testing.T) {
	svc := newStockService()
	ctx := context.Background()

	item, err := svc.AddToStock(ctx, "Iron", dec("50"), dec("2.5"))
	require.NoError(t, err)

	assert.Equal(t, "Iron", item.Name)
	assert.True(t, item.TotalWeight.Equal(dec("50")))
	assert.Equal(t, 1, item.EntryCount)
	assert.True(t, item.AveragePricePerKg.Equal(dec("2.5")))
	assert.True(t, item.TotalValue.Equal(dec("125")))
}

func TestAddToStockBlendsAveragePrice(t *testing.T) {
	svc := newStockService()
	ctx := context.Background()

	_, err := svc.AddToStock(ctx, "Iron", dec("50"), dec("2.5"))
	require.NoError(t, err)

	// 125 + 50*3.5 = 300 over 100 kg → 3.00/kg
	item, err := svc.AddToStock(ctx, "Iron", dec("50"), dec("3.5"))
	require.NoError(t, err)

	assert.True(t, item.TotalWeight.Equal(dec("100")))
	assert.Equal(t, 2, item.EntryCount)
	assert.True(t, item.AveragePricePerKg.Equal(dec("3")))
	assert.True(t, item.TotalValue.Equal(dec("300")))
}

func TestAddToStockAverageIsValueOverWeight(t *testing.T) {
	svc := newStockService()
	ctx := context.Background()

	entries := []struct{ weight, price string }{
		{"10", "2"},
		{"3.5", "7.25"},
		{"120", "1.8"},
		{"0.75", "40"},
	}
	var item = struct {
		weight, value decimal.Decimal
	}{decimal.Zero, decimal.Zero}

	for _, e := range entries {
		w, p := dec(e.weight), dec(e.price)
		got, err := svc.AddToStock(ctx, "Mixed Scrap", w, p)
		require.NoError(t, err)

		item.weight = item.weight.Add(w)
		item.value = item.value.Add(w.Mul(p))
		assert.True(t, got.TotalWeight.Equal(item.weight))
		assert.True(t, got.TotalValue.Equal(item.value))
		assert.True(t, got.AveragePricePerKg.Equal(item.value.Div(item.weight)))
	}
}

func TestAddToStockRejectsInvalidInput(t *testing.T) {
	svc := newStockService()
	ctx := context.Background()

	_, err := svc.AddToStock(ctx, "", dec("10"), dec("1"))
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = svc.AddToStock(ctx, "Iron", dec("0"), dec("1"))
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = svc.AddToStock(ctx, "Iron", dec("10"), dec("-2"))
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestRemoveFromStockKeepsAveragePrice(t *testing.T) {
	svc := newStockService()
	ctx := context.Background()

	created, err := svc.AddToStock(ctx, "Iron", dec("50"), dec("2.5"))
	require.NoError(t, err)

	item, err := svc.RemoveFromStock(ctx, created.ID, dec("20"))
	require.NoError(t, err)
	require.NotNil(t, item)

	assert.True(t, item.TotalWeight.Equal(dec("30")))
	assert.True(t, item.TotalValue.Equal(dec("75"))) // 125 - 20*2.5
	assert.True(t, item.AveragePricePerKg.Equal(dec("2.5")))
	assert.Equal(t, 1, item.EntryCount)
}

func TestRemoveFromStockInsufficientLeavesItemUntouched(t *testing.T) {
	svc := newStockService()
	ctx := context.Background()

	created, err := svc.AddToStock(ctx, "Iron", dec("50"), dec("2.5"))
	require.NoError(t, err)

	_, err = svc.RemoveFromStock(ctx, created.ID, dec("60"))
	assert.ErrorIs(t, err, service.ErrInsufficientStock)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalWeight.Equal(dec("50")))
	assert.True(t, got.TotalValue.Equal(dec("125")))
}

func TestRemoveFromStockToZeroDeletesAggregate(t *testing.T) {
	svc := newStockService()
	ctx := context.Background()

	created, err := svc.AddToStock(ctx, "Iron", dec("50"), dec("2.5"))
	require.NoError(t, err)

	item, err := svc.RemoveFromStock(ctx, created.ID, dec("50"))
	require.NoError(t, err)
	assert.Nil(t, item)

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestRemoveFromStockUnknownItem(t *testing.T) {
	svc := newStockService()

	_, err := svc.RemoveFromStock(context.Background(), uuid.New(), dec("1"))
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestStockListSumsTotals(t *testing.T) {
	svc := newStockService()
	ctx := context.Background()

	_, err := svc.AddToStock(ctx, "Iron", dec("50"), dec("2.5"))
	require.NoError(t, err)
	_, err = svc.AddToStock(ctx, "Copper", dec("10"), dec("35"))
	require.NoError(t, err)

	resp, err := svc.List(ctx)
	require.NoError(t, err)

	require.Len(t, resp.Data, 2)
	// alphabetical: Copper first
	assert.Equal(t, "Copper", resp.Data[0].Name)
	assert.Equal(t, "Iron", resp.Data[1].Name)
	assert.True(t, resp.TotalWeight.Equal(dec("60")))
	assert.True(t, resp.TotalValue.Equal(dec("475"))) // 125 + 350
}

func TestStockErrorsAreDistinguishable(t *testing.T) {
	svc := newStockService()
	ctx := context.Background()

	created, err := svc.AddToStock(ctx, "Iron", dec("5"), dec("2"))
	require.NoError(t, err)

	_, err = svc.RemoveFromStock(ctx, created.ID, dec("10"))
	assert.True(t, errors.Is(err, service.ErrInsufficientStock))
	assert.False(t, errors.Is(err, service.ErrNotFound))
}
