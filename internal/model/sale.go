package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale records one material sold out of stock.
// StockItemID is a reference, not ownership: the stock row is deleted when its
// weight reaches zero, so there is deliberately no FK constraint here and the
// material name/price are denormalized onto the sale.
type Sale struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Date        string          `gorm:"type:varchar(10);index;not null" json:"date"` // YYYY-MM-DD
	PaymentType string          `gorm:"not null;index" json:"payment_type"`
	StockItemID uuid.UUID       `gorm:"type:uuid;not null" json:"stock_item_id"`
	ItemName    string          `gorm:"not null" json:"item_name"`
	Weight      decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"weight"`
	PricePerKg  decimal.Decimal `gorm:"type:decimal(12,4);not null" json:"price_per_kg"`
	TotalValue  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_value"`
	UserID      *uuid.UUID      `gorm:"type:uuid" json:"user_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
