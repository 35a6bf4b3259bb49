package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockItem is the aggregate ledger record for one material (keyed by name).
// AveragePricePerKg is a moving weighted average over purchase cost only;
// sales decrement weight and value at the current average but never change it.
// Invariant: TotalValue == TotalWeight * AveragePricePerKg (maintained on
// every mutation, not re-derived on read).
type StockItem struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name              string          `gorm:"uniqueIndex;not null" json:"name"`
	TotalWeight       decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"total_weight"`
	EntryCount        int             `gorm:"not null;default:0" json:"entry_count"`
	AveragePricePerKg decimal.Decimal `gorm:"type:decimal(12,4);not null" json:"average_price_per_kg"`
	TotalValue        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_value"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// TableName overrides GORM's default pluralization (stock_items → stock).
func (StockItem) TableName() string { return "stock" }
