package dto

import "github.com/shopspring/decimal"

// DashboardResponse is the front-page summary: current stock position plus
// today's movement totals.
type DashboardResponse struct {
	StockItemCount   int             `json:"stock_item_count"`
	StockTotalWeight decimal.Decimal `json:"stock_total_weight"`
	StockTotalValue  decimal.Decimal `json:"stock_total_value"`
	TodayPurchases   decimal.Decimal `json:"today_purchases"`
	TodaySales       decimal.Decimal `json:"today_sales"`
	TodayCashflow    CashflowSummary `json:"today_cashflow"`
}
