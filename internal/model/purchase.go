package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment types — fixed, closed set shared by purchases, sales and the
// cashflow filters. Values travel verbatim in JSON and query strings.
const (
	PaymentCash            = "cash"
	PaymentInstantTransfer = "instant-transfer"
	PaymentCredit          = "credit"
	PaymentDebit           = "debit"
)

// Purchase is a scrap intake: one header plus its line items.
// TotalWeight/TotalValue are pre-summed over the valid line items.
// The record is immutable after creation except for deletion.
type Purchase struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Date        string          `gorm:"type:varchar(10);index;not null" json:"date"` // YYYY-MM-DD
	PaymentType string          `gorm:"not null;index" json:"payment_type"`
	TotalWeight decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"total_weight"`
	TotalValue  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_value"`
	UserID      *uuid.UUID      `gorm:"type:uuid" json:"user_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`

	Items []PurchaseItem `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// PurchaseItem is one material line inside a purchase.
// TotalValue = Weight * PricePerKg, computed at creation.
type PurchaseItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PurchaseID uuid.UUID       `gorm:"type:uuid;not null;index" json:"purchase_id"`
	ItemName   string          `gorm:"not null" json:"item_name"`
	Weight     decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"weight"`
	PricePerKg decimal.Decimal `gorm:"type:decimal(12,4);not null" json:"price_per_kg"`
	TotalValue decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_value"`
}
