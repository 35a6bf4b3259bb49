package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// RecordFilter is bound from the query string of the purchase, sale and
// cashflow list endpoints. Date accepts a full day (YYYY-MM-DD, exact match)
// or a month (YYYY-MM, prefix match).
type RecordFilter struct {
	Date        string `form:"date" validate:"omitempty,max=10"`
	PaymentType string `form:"payment_type" validate:"omitempty,oneof=cash instant-transfer credit debit"`
}

// ─── Request DTOs ───────────────────────────────────────────────────────────

// PurchaseItemRequest carries one material line. Lines with an empty name or
// non-positive weight/price are filtered out by the service, not rejected
// here — the purchase fails only when no valid line survives.
type PurchaseItemRequest struct {
	ItemName   string          `json:"item_name"`
	Weight     decimal.Decimal `json:"weight"`
	PricePerKg decimal.Decimal `json:"price_per_kg"`
}

type CreatePurchaseRequest struct {
	Date        string                `json:"date"         validate:"required,len=10"`
	PaymentType string                `json:"payment_type" validate:"required,oneof=cash instant-transfer credit debit"`
	Items       []PurchaseItemRequest `json:"items"        validate:"required,min=1"`
}

// ─── Response DTOs ──────────────────────────────────────────────────────────

type PurchaseItemResponse struct {
	ID         string          `json:"id"`
	ItemName   string          `json:"item_name"`
	Weight     decimal.Decimal `json:"weight"`
	PricePerKg decimal.Decimal `json:"price_per_kg"`
	TotalValue decimal.Decimal `json:"total_value"`
}

type PurchaseResponse struct {
	ID          string                 `json:"id"`
	Date        string                 `json:"date"`
	PaymentType string                 `json:"payment_type"`
	TotalWeight decimal.Decimal        `json:"total_weight"`
	TotalValue  decimal.Decimal        `json:"total_value"`
	Items       []PurchaseItemResponse `json:"items,omitempty"`
	CreatedAt   string                 `json:"created_at"`
}

type PurchaseListResponse struct {
	Data  []PurchaseResponse `json:"data"`
	Total int                `json:"total"`
}
