package dto

import "github.com/shopspring/decimal"

type CreateSaleRequest struct {
	Date        string          `json:"date"          validate:"required,len=10"`
	PaymentType string          `json:"payment_type"  validate:"required,oneof=cash instant-transfer credit debit"`
	StockItemID string          `json:"stock_item_id" validate:"required,uuid"`
	Weight      decimal.Decimal `json:"weight"        validate:"required,gt=0"`
	PricePerKg  decimal.Decimal `json:"price_per_kg"  validate:"required,gt=0"`
}

type SaleResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	PaymentType string          `json:"payment_type"`
	StockItemID string          `json:"stock_item_id"`
	ItemName    string          `json:"item_name"`
	Weight      decimal.Decimal `json:"weight"`
	PricePerKg  decimal.Decimal `json:"price_per_kg"`
	TotalValue  decimal.Decimal `json:"total_value"`
	CreatedAt   string          `json:"created_at"`
}

type SaleListResponse struct {
	Data  []SaleResponse `json:"data"`
	Total int            `json:"total"`
}
