package memory

import (
	"context"
	"testing"
	"time"

	"github.com/guilhermehba/estoque-ferro-velho/internal/dto"
	"github.com/guilhermehba/estoque-ferro-velho/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMissingRecordsReturnGormSentinel(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.Stock().FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = store.Stock().FindByName(ctx, "Nope")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = store.Purchases().FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = store.Sales().FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = store.Users().FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDateFilterMonthPrefixVsExactDay(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	repo := store.Purchases()

	for _, date := range []string{"2025-03-05", "2025-03-10", "2025-04-01"} {
		require.NoError(t, repo.CreateTx(nil, &model.Purchase{
			Date:        date,
			PaymentType: model.PaymentCash,
			TotalWeight: dec("1"),
			TotalValue:  dec("1"),
		}))
	}

	month, err := repo.List(ctx, dto.RecordFilter{Date: "2025-03"})
	require.NoError(t, err)
	assert.Len(t, month, 2)

	day, err := repo.List(ctx, dto.RecordFilter{Date: "2025-03-05"})
	require.NoError(t, err)
	require.Len(t, day, 1)
	assert.Equal(t, "2025-03-05", day[0].Date)

	none, err := repo.List(ctx, dto.RecordFilter{Date: "2024-01"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListOrdersByDateDescending(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	repo := store.Sales()

	for _, date := range []string{"2025-03-05", "2025-04-01", "2025-03-10"} {
		require.NoError(t, repo.CreateTx(nil, &model.Sale{
			Date:        date,
			PaymentType: model.PaymentCash,
			StockItemID: uuid.New(),
			ItemName:    "Iron",
			Weight:      dec("1"),
			PricePerKg:  dec("1"),
			TotalValue:  dec("1"),
		}))
	}

	sales, err := repo.List(ctx, dto.RecordFilter{})
	require.NoError(t, err)
	require.Len(t, sales, 3)
	assert.Equal(t, "2025-04-01", sales[0].Date)
	assert.Equal(t, "2025-03-10", sales[1].Date)
	assert.Equal(t, "2025-03-05", sales[2].Date)
}

func TestPurchaseDeleteRemovesItems(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	repo := store.Purchases()

	p := &model.Purchase{
		Date:        "2025-03-05",
		PaymentType: model.PaymentCash,
		Items: []model.PurchaseItem{
			{ItemName: "Iron", Weight: dec("10"), PricePerKg: dec("2"), TotalValue: dec("20")},
		},
	}
	require.NoError(t, repo.CreateTx(nil, p))

	items, err := repo.ListItems(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, p.ID, items[0].PurchaseID)

	require.NoError(t, repo.DeleteTx(nil, p.ID))

	items, err = repo.ListItems(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStoreReturnsCopies(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	item := &model.StockItem{Name: "Iron", TotalWeight: dec("10"), EntryCount: 1,
		AveragePricePerKg: dec("2"), TotalValue: dec("20")}
	require.NoError(t, store.Stock().CreateTx(nil, item))

	got, err := store.Stock().FindByID(ctx, item.ID)
	require.NoError(t, err)
	got.Name = "Mutated"

	again, err := store.Stock().FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Iron", again.Name)
}

func TestSeedLoadsDemoData(t *testing.T) {
	store := NewStore()
	store.Seed()
	ctx := context.Background()

	user, err := store.Users().FindByEmail(ctx, DemoEmail)
	require.NoError(t, err)
	assert.True(t, user.Active)

	stock, err := store.Stock().List(ctx)
	require.NoError(t, err)
	assert.Len(t, stock, 4)

	iron, err := store.Stock().FindByName(ctx, "Iron")
	require.NoError(t, err)
	assert.True(t, iron.TotalWeight.Equal(dec("150.5")))
	assert.Equal(t, 3, iron.EntryCount)

	today := time.Now().Format("2006-01-02")
	purchases, err := store.Purchases().List(ctx, dto.RecordFilter{Date: today})
	require.NoError(t, err)
	assert.Len(t, purchases, 1)

	sales, err := store.Sales().List(ctx, dto.RecordFilter{})
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "Iron", sales[0].ItemName)
}
