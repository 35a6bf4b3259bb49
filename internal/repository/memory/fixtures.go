package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/guilhermehba/estoque-ferro-velho/internal/model"
)

// Demo credentials for mock mode.
const (
	DemoEmail    = "teste@gmail.com"
	DemoPassword = "123"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Seed loads the demo data set so mock mode is usable out of the box:
// four stock aggregates, a couple of purchases with line items, and matching
// sales. Aggregates are pre-summed; seeding does not replay the ledger math.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	hash, _ := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	user := model.User{
		ID:           uuid.New(),
		Email:        DemoEmail,
		Name:         "Demo User",
		PasswordHash: string(hash),
		Active:       true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	s.users[user.ID] = user

	stock := []model.StockItem{
		{Name: "Iron", TotalWeight: dec("150.5"), EntryCount: 3, AveragePricePerKg: dec("2.5"), TotalValue: dec("376.25")},
		{Name: "Copper", TotalWeight: dec("85.3"), EntryCount: 2, AveragePricePerKg: dec("35"), TotalValue: dec("2985.5")},
		{Name: "Aluminum", TotalWeight: dec("200"), EntryCount: 4, AveragePricePerKg: dec("8.5"), TotalValue: dec("1700")},
		{Name: "Bronze", TotalWeight: dec("45.2"), EntryCount: 1, AveragePricePerKg: dec("28"), TotalValue: dec("1265.6")},
	}
	for _, item := range stock {
		item.ID = uuid.New()
		item.CreatedAt = time.Now()
		item.UpdatedAt = time.Now()
		s.stock[item.ID] = item
	}

	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	p1 := model.Purchase{
		ID: uuid.New(), Date: today, PaymentType: model.PaymentCash,
		TotalWeight: dec("50"), TotalValue: dec("125"),
		UserID: &user.ID, CreatedAt: time.Now(),
	}
	s.purchases = append(s.purchases, p1)
	s.purchaseItems[p1.ID] = []model.PurchaseItem{
		{ID: uuid.New(), PurchaseID: p1.ID, ItemName: "Iron", Weight: dec("50"), PricePerKg: dec("2.5"), TotalValue: dec("125")},
	}

	p2 := model.Purchase{
		ID: uuid.New(), Date: yesterday, PaymentType: model.PaymentInstantTransfer,
		TotalWeight: dec("30"), TotalValue: dec("1050"),
		UserID: &user.ID, CreatedAt: time.Now().Add(-24 * time.Hour),
	}
	s.purchases = append(s.purchases, p2)
	s.purchaseItems[p2.ID] = []model.PurchaseItem{
		{ID: uuid.New(), PurchaseID: p2.ID, ItemName: "Copper", Weight: dec("30"), PricePerKg: dec("35"), TotalValue: dec("1050")},
	}

	var ironID uuid.UUID
	for id, item := range s.stock {
		if item.Name == "Iron" {
			ironID = id
		}
	}
	s.sales = append(s.sales, model.Sale{
		ID: uuid.New(), Date: today, PaymentType: model.PaymentCash,
		StockItemID: ironID, ItemName: "Iron",
		Weight: dec("20"), PricePerKg: dec("4"), TotalValue: dec("80"),
		UserID: &user.ID, CreatedAt: time.Now(),
	})
}
