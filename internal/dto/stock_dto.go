package dto

import "github.com/shopspring/decimal"

// StockItemResponse is returned by GET /v1/stock and by the purchase/sale
// services after a ledger mutation.
type StockItemResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	TotalWeight       decimal.Decimal `json:"total_weight"`
	EntryCount        int             `json:"entry_count"`
	AveragePricePerKg decimal.Decimal `json:"average_price_per_kg"`
	TotalValue        decimal.Decimal `json:"total_value"`
	CreatedAt         string          `json:"created_at"`
	UpdatedAt         string          `json:"updated_at"`
}

type StockListResponse struct {
	Data        []StockItemResponse `json:"data"`
	TotalWeight decimal.Decimal     `json:"total_weight"`
	TotalValue  decimal.Decimal     `json:"total_value"`
}
